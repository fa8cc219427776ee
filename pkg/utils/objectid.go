package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh 24-hex object id. Ids sort by creation time.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is a well-formed 24-hex object id.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// SameID compares two ids by value, ignoring hex case.
func SameID(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	oa, err := primitive.ObjectIDFromHex(a)
	if err != nil {
		return false
	}
	ob, err := primitive.ObjectIDFromHex(b)
	if err != nil {
		return false
	}
	return oa == ob
}
