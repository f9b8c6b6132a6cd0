// Package dbmodel holds the row shapes bound by sqlboiler queries.
// Field tags name the selected column; nullable columns use aarondl/null types.
package dbmodel
