package config

// DefaultDatabasePath is the default path for the book collection database
const DefaultDatabasePath = "./bookshelf.db"
