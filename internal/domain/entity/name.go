package entity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameKey clave de comparación de nombres sin distinguir mayúsculas
// ("Maria", "MARIA" y "maria" producen la misma clave). Solo pasa a
// minúsculas: "Straße" y "STRASSE" siguen siendo nombres distintos.
// Un Caser guarda estado, por eso se crea uno por llamada.
func NameKey(name string) string {
	return cases.Lower(language.Und).String(name)
}
