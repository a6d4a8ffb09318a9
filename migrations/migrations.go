// Package migrations contiene el esquema SQL, embebido en el binario.
package migrations

import "embed"

// Files guarda los archivos NNN_descripcion.sql; se aplican en orden lexicográfico.
//
//go:embed *.sql
var Files embed.FS
