package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnerDetails_UnsetIsNull(t *testing.T) {
	h := NewOwnerHandler(&fakeOwnerStore{}, nil)
	c, rec := newJSONContext(t, http.MethodGet, "/api/owner_details", "")

	require.NoError(t, h.GetOwnerDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, rec.Body.String())
}

func TestSetOwnerDetails_ThenGet(t *testing.T) {
	store := &fakeOwnerStore{}
	h := NewOwnerHandler(store, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/owner_details",
		`{"name":"Wanjiru","experience":"12 years","location":"Naivasha","specialty":"roses"}`)
	require.NoError(t, h.SetOwnerDetails(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Owner details updated successfully"}`, rec.Body.String())

	c2, rec2 := newJSONContext(t, http.MethodGet, "/api/owner_details", "")
	require.NoError(t, h.GetOwnerDetails(c2))
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.JSONEq(t,
		`{"_id":"owner","name":"Wanjiru","experience":"12 years","location":"Naivasha","specialty":"roses"}`,
		rec2.Body.String())
}

// Posting a partial body replaces the whole tracked field set: fields left
// out of the second POST come back empty, not merged from the first.
func TestSetOwnerDetails_ReplacesNotMerges(t *testing.T) {
	store := &fakeOwnerStore{}
	h := NewOwnerHandler(store, nil)

	c1, _ := newJSONContext(t, http.MethodPost, "/api/owner_details",
		`{"name":"Wanjiru","experience":"12 years","location":"Naivasha","specialty":"roses"}`)
	require.NoError(t, h.SetOwnerDetails(c1))

	c2, rec2 := newJSONContext(t, http.MethodPost, "/api/owner_details", `{"name":"Kamau"}`)
	require.NoError(t, h.SetOwnerDetails(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	require.NotNil(t, store.profile)
	assert.Equal(t, "Kamau", store.profile.Name)
	assert.Empty(t, store.profile.Experience)
	assert.Empty(t, store.profile.Location)
	assert.Empty(t, store.profile.Specialty)
}
