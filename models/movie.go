// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Movie is a read-only catalog entry.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// Genre is embedded into every movie and looked up by name.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Director is embedded into every movie and looked up by name.
type Director struct {
	Name       string     `json:"name"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	BirthPlace string     `json:"birthPlace"`
	Bio        string     `json:"bio"`
	ImageURL   string     `json:"imageUrl"`
}
