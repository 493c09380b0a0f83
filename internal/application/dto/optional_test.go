package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
)

func TestOptionalTime_DistingueAusenteDeNull(t *testing.T) {
	var absent dto.UpdateLicenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"licenseId":"x","isActive":false}`), &absent))
	assert.False(t, absent.ExpiresAt.Set)

	var null dto.UpdateLicenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"licenseId":"x","expiresAt":null}`), &null))
	assert.True(t, null.ExpiresAt.Set)
	assert.Nil(t, null.ExpiresAt.Time)

	var date dto.UpdateLicenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"licenseId":"x","expiresAt":"2026-12-31"}`), &date))
	require.True(t, date.ExpiresAt.Set)
	require.NotNil(t, date.ExpiresAt.Time)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *date.ExpiresAt.Time)
}

func TestOptionalTime_ISOConZona(t *testing.T) {
	var req dto.CreateLicenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"businessName":"Warung","expiresAt":"2026-01-01T07:00:00+07:00"}`), &req))
	require.NotNil(t, req.ExpiresAt.Time)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *req.ExpiresAt.Time)
}

func TestOptionalTime_Invalida(t *testing.T) {
	var req dto.CreateLicenseRequest
	assert.Error(t, json.Unmarshal([]byte(`{"expiresAt":"mañana"}`), &req))
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{Limit: 0, Offset: -3}
	p.DefaultPage(100, 500)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 9000}
	p.DefaultPage(100, 500)
	assert.Equal(t, 500, p.Limit)
}
