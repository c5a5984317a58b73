package operand

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	for _, tc := range []struct {
		typ     Type
		text    string
		str     string
		wantErr error
	}{
		{typ: Int8, text: "42", str: "42"},
		{typ: Int8, text: "-42", str: "-42"},
		{typ: Int8, text: "127", str: "127"},
		{typ: Int8, text: "-128", str: "-128"},
		{typ: Int8, text: "128", wantErr: ErrOverflow},
		{typ: Int8, text: "-129", wantErr: ErrUnderflow},
		{typ: Int8, text: "512", wantErr: ErrOverflow},
		{typ: Int8, text: "-512", wantErr: ErrUnderflow},
		{typ: Int8, text: "1.5", wantErr: ErrParse},
		{typ: Int8, text: "-", wantErr: ErrParse},
		{typ: Int8, text: "", wantErr: ErrParse},

		{typ: Int16, text: "-42", str: "-42"},
		{typ: Int16, text: "32767", str: "32767"},
		{typ: Int16, text: "32768", wantErr: ErrOverflow},
		{typ: Int16, text: "-32769", wantErr: ErrUnderflow},

		{typ: Int32, text: "42", str: "42"},
		{typ: Int32, text: "2147483647", str: "2147483647"},
		{typ: Int32, text: "4294967296", wantErr: ErrOverflow},
		{typ: Int32, text: "-2147483649", wantErr: ErrUnderflow},
		{typ: Int32, text: "12.0", wantErr: ErrParse},

		{typ: Float, text: "42.42", str: "42.42"},
		{typ: Float, text: "-42.42", str: "-42.42"},
		{typ: Float, text: "7", str: "7.00"},
		{typ: Float, text: "0.125", str: "0.12"},
		{typ: Float, text: "99999340282346638528859811704183484516925441", wantErr: ErrOverflow},
		{typ: Float, text: "-99999340282346638528859811704183484516925441", wantErr: ErrUnderflow},
		{typ: Float, text: "NaN", wantErr: ErrParse},
		{typ: Float, text: "1.2.3", wantErr: ErrParse},

		{typ: Double, text: "42.42", str: "42.42"},
		{typ: Double, text: "-0.5", str: "-0.50"},
		{typ: Double, text: "123456789.5", str: "123456789.50"},
		{typ: Double, text: "1" + zeros(400), wantErr: ErrOverflow},
		{typ: Double, text: "-1" + zeros(400), wantErr: ErrUnderflow},
		{typ: Double, text: "nan", wantErr: ErrParse},
	} {
		t.Run(fmt.Sprintf("%v(%.20s)", tc.typ, tc.text), func(t *testing.T) {
			o, err := Create(tc.typ, tc.text)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v error, got: %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.typ, o.Type(), "expected type")
			assert.Equal(t, tc.str, o.String(), "expected display string")
		})
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestCreateValues(t *testing.T) {
	i8, ok := MustCreate(Int8, "127").Int8()
	assert.True(t, ok)
	assert.Equal(t, int8(127), i8)

	_, ok = MustCreate(Int16, "65").Int8()
	assert.False(t, ok, "int16 is not int8")

	assert.Equal(t, float64(-126), MustCreate(Int8, "-126").Value())
	assert.Equal(t, float64(float32(42.42)), MustCreate(Float, "42.42").Value())
	assert.Equal(t, 42.42, MustCreate(Double, "42.42").Value())
	assert.Equal(t, 3, MustCreate(Float, "1").Precision())
}

func TestDisplayRoundTrip(t *testing.T) {
	for _, typ := range Types {
		min, max := typ.Limits()
		var texts []string
		if typ.Integral() {
			texts = []string{"0", "1", "-1", "42", "-100", formatLimit(min), formatLimit(max)}
		} else {
			texts = []string{"0", "0.01", "-0.25", "1.5", "42.42", "-1234.56", "100000"}
		}
		for _, text := range texts {
			o, err := Create(typ, text)
			require.NoError(t, err, "create %v(%v)", typ, text)
			again, err := Create(typ, o.String())
			require.NoError(t, err, "re-create %v(%v)", typ, o.String())
			assert.Equal(t, o.String(), again.String(), "%v(%v) round trip", typ, text)
			assert.False(t, o.NotEqual(again), "%v(%v) round trip equality", typ, text)
		}
	}
}

func TestNotEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b     Operand
		notEqual bool
	}{
		{MustCreate(Int32, "42"), MustCreate(Int32, "42"), false},
		{MustCreate(Int32, "42"), MustCreate(Int16, "42"), true},
		{MustCreate(Int32, "42"), MustCreate(Int32, "43"), true},
		{MustCreate(Float, "42"), MustCreate(Double, "42"), true},
		{MustCreate(Double, "1.001"), MustCreate(Double, "1.004"), false},
		{MustCreate(Double, "1.001"), MustCreate(Double, "1.01"), true},
	} {
		assert.Equal(t, tc.notEqual, tc.a.NotEqual(tc.b), "%#v != %#v", tc.a, tc.b)
		assert.Equal(t, !tc.notEqual, tc.a.Equal(tc.b), "%#v == %#v", tc.a, tc.b)
	}
}
