package model

import "gorm.io/datatypes"

// StringList is stored as a JSON array column.
type StringList = datatypes.JSONSlice[string]
