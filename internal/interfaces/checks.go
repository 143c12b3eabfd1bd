package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/services"
)

// BookReader/BookWriter implementations
var _ services.BookReader = (*database.Database)(nil)
var _ services.BookWriter = (*database.Database)(nil)
var _ services.BookStore = (*database.Database)(nil)
