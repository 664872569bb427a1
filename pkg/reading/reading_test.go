package reading

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarMarshalsBareValue(t *testing.T) {
	tests := []struct {
		name string
		r    Reading
		want string
	}{
		{"int", Int(42), "42"},
		{"int64", Int64(8589934592), "8589934592"},
		{"float", Float64(50.5), "50.5"},
		{"bool", Bool(true), "true"},
		{"string", Str("Hailo-10H"), `"Hailo-10H"`},
		{"strings", Strings([]string{"under-voltage", "throttled"}), `["under-voltage","throttled"]`},
		{"nil strings", Strings(nil), "[]"},
		{"maps", Maps([]map[string]string{{"addr": "0000:01:00.0"}}), `[{"addr":"0000:01:00.0"}]`},
		{"nil maps", Maps(nil), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.r)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestSectionMarshalsFlat(t *testing.T) {
	s := NewSectionBuilder().
		SetBool("present", true).
		SetString("architecture", "HAILO10H").
		SetFloat64("temp_c", 48.2).
		SetInt("loaded_networks", 0).
		SetStrings("network_names", nil).
		Build()

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, true, out["present"])
	assert.Equal(t, "HAILO10H", out["architecture"])
	assert.Equal(t, 48.2, out["temp_c"])
	assert.Equal(t, []any{}, out["network_names"])
}

func TestSectionGetters(t *testing.T) {
	s := Section{
		"total":    Int64(8589934592),
		"used_pct": Float64(50.0),
		"model":    Str("Raspberry Pi 5"),
		"ok":       Bool(true),
	}

	v, err := s.GetInt64("total")
	require.NoError(t, err)
	assert.Equal(t, int64(8589934592), v)

	f, err := s.GetFloat64("used_pct")
	require.NoError(t, err)
	assert.Equal(t, 50.0, f)

	// integers convert to float on demand
	f, err = s.GetFloat64("total")
	require.NoError(t, err)
	assert.Equal(t, 8589934592.0, f)

	str, err := s.GetString("model")
	require.NoError(t, err)
	assert.Equal(t, "Raspberry Pi 5", str)

	ok, err := s.GetBool("ok")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.GetString("missing")
	assert.Error(t, err)

	_, err = s.GetFloat64("model")
	assert.Error(t, err)
}

func TestToReading(t *testing.T) {
	assert.Equal(t, 30.0, ToReading(30.0).Any())
	assert.Equal(t, "idle", ToReading("idle").Any())
	assert.Equal(t, true, ToReading(true).Any())
	assert.Equal(t, int64(7), ToReading(int64(7)).Any())

	// unsupported types degrade to strings
	assert.Equal(t, "[1 2]", ToReading([]int{1, 2}).Any())
}

func TestSectionEqual(t *testing.T) {
	a := Section{"rpm": Int(2100), "hwmon": Int(2)}
	b := Section{"rpm": Int(2100), "hwmon": Int(2)}
	c := Section{"rpm": Int(2200), "hwmon": Int(2)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Section{"rpm": Int(2100)}))
}
