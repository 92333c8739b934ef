package table

import "github.com/go-bcif/bcif/format"

// undefinedColumn is returned by Category.GetColumn for a name that does
// not exist in the category. Every accessor returns a neutral default (no
// string, zero, EqualsAbsent true, presence Present); it never panics
// regardless of the row index passed in.
type undefinedColumn struct{}

// Undefined is the sentinel Column returned for an unknown column name.
var Undefined Column = undefinedColumn{}

func (undefinedColumn) Len() int        { return 0 }
func (undefinedColumn) IsDefined() bool { return false }

func (undefinedColumn) GetString(int) (string, bool) { return "", false }
func (undefinedColumn) GetInteger(int) int64         { return 0 }
func (undefinedColumn) GetFloat(int) float64         { return 0 }

func (undefinedColumn) StringEquals(_ int, _ string, hasValue bool) bool { return !hasValue }
func (undefinedColumn) EqualsAbsent(int) bool                           { return true }
func (undefinedColumn) AreValuesEqual(int, int) bool                    { return true }
func (undefinedColumn) GetValuePresence(int) format.Presence            { return format.Present }
