package rest_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"raincast/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestNumberFloat64(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		raw     rest.Number
		want    float64
		wantErr bool
	}{
		{name: "Integer", raw: `20`, want: 20},
		{name: "Fraction", raw: `-3.25`, want: -3.25},
		{name: "Exponent", raw: `1e1`, want: 10},
		{name: "Numeric string", raw: `"21.5"`, want: 21.5},
		{name: "Numeric string with spaces", raw: `" 7 "`, want: 7},
		{name: "Word", raw: `"warm"`, wantErr: true},
		{name: "Empty string", raw: `""`, wantErr: true},
		{name: "Bool", raw: `true`, wantErr: true},
		{name: "Object", raw: `{}`, wantErr: true},
		{name: "NaN string", raw: `"NaN"`, wantErr: true},
		{name: "Infinity string", raw: `"inf"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := tc.raw.Float64()
			if tc.wantErr {
				rq.Error(err)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestPredictRequestDecode(t *testing.T) {
	rq := require.New(t)

	var request rest.PredictRequest

	rq.NoError(json.Unmarshal([]byte(`{"readings":[{"air":20,"dew":"15"},{"air":18},{"air":null,"dew":[1]}]}`), &request))
	rq.Len(request.Readings, 3)

	air, err := request.Readings[0].Air.Float64()
	rq.NoError(err)
	rq.Equal(20.0, air)

	dew, err := request.Readings[0].Dew.Float64()
	rq.NoError(err)
	rq.Equal(15.0, dew)

	rq.Nil(request.Readings[1].Dew)
	rq.Nil(request.Readings[2].Air)

	_, err = request.Readings[2].Dew.Float64()
	rq.Error(err)
}

func TestPredictRequestEncode(t *testing.T) {
	rq := require.New(t)

	b, err := json.Marshal(rest.PredictRequest{
		Readings: []rest.Reading{{Air: rest.NewNumber(20.5), Dew: rest.NewNumber(-1)}},
	})
	rq.NoError(err)
	rq.JSONEq(`{"readings":[{"air":20.5,"dew":-1}]}`, string(b))
}
