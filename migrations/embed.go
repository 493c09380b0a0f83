// Package migrations contiene el esquema SQL de Therra embebido en el binario.
package migrations

import "embed"

// Files archivos .sql, aplicados en orden lexicográfico.
//
//go:embed *.sql
var Files embed.FS
