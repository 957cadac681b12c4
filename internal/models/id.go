package models

import "github.com/google/uuid"

// assignID sets a fresh UUID on an empty primary key.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
