package gym

import "strconv"

// RowID lê um id numérico de uma linha genérica. O driver devolve
// inteiros com tipos variados conforme a origem do valor.
func RowID(row Row, column Column) uint {
	switch v := row[column.String()].(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int32:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	case string:
		n, _ := strconv.ParseUint(v, 10, 64)
		return uint(n)
	}
	return 0
}
