package note

import "errors"

type OrderBy struct {
	v string
}

var (
	OrderByNotSet        OrderBy = OrderBy{}
	OrderByIDAsc         OrderBy = OrderBy{v: "id_asc"}
	OrderByIDDesc        OrderBy = OrderBy{v: "id_desc"}
	OrderByUpdatedAtAsc  OrderBy = OrderBy{v: "updated_at_asc"}
	OrderByUpdatedAtDesc OrderBy = OrderBy{v: "updated_at_desc"}
)

var ErrParseOrderBy = errors.New("invalid order")

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "id_asc":
		return OrderByIDAsc, nil
	case "id_desc":
		return OrderByIDDesc, nil
	case "updated_at_asc":
		return OrderByUpdatedAtAsc, nil
	case "updated_at_desc":
		return OrderByUpdatedAtDesc, nil
	default:
		return OrderByNotSet, ErrParseOrderBy
	}
}
