package httperr

import "errors"

// BusinessError sinaliza uma violação de regra de negócio identificada
// por código estável (unknown_table, invalid_role, ...). O código é o
// mesmo que vai no envelope JSON.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness verifica se err carrega o código informado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
