package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts formatos aceptados para fechas de entrada (ISO completo o solo fecha).
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// OptionalTime fecha opcional que distingue "ausente" de "null".
//   - campo ausente: Set=false
//   - null o "":     Set=true, Time=nil
//   - fecha:         Set=true, Time!=nil (en UTC)
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

// UnmarshalJSON implementa json.Unmarshaler.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Time = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	o.Time = &t
	return nil
}

// ParseDate interpreta una fecha de entrada. Las fechas sin hora quedan a las 00:00 UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}
