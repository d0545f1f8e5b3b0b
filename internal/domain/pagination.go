package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Offset int
	Limit  int
}
