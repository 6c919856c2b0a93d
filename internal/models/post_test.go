package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocations_Value(t *testing.T) {
	v, err := Locations{"Paris", "Lyon"}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["Paris","Lyon"]`, string(v.([]byte)))

	// nil serializes as an empty array, not null
	v, err = Locations(nil).Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v.([]byte)))
}

func TestLocations_Scan(t *testing.T) {
	var l Locations
	assert.NoError(t, l.Scan([]byte(`["Paris","Lyon"]`)))
	assert.Equal(t, Locations{"Paris", "Lyon"}, l)

	var fromString Locations
	assert.NoError(t, fromString.Scan(`["Rome"]`))
	assert.Equal(t, Locations{"Rome"}, fromString)

	var fromNil Locations
	assert.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, Locations{}, fromNil)

	var bad Locations
	assert.Error(t, bad.Scan(42))
}
