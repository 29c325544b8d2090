package registration

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// CountryEntry is one directory entry: a country name and its selectable cities.
type CountryEntry struct {
	Name   string
	Cities []string
}

// Directory is the ordered country to city lookup consulted by the form.
// It is never mutated after construction.
type Directory struct {
	countries []CountryEntry
}

var defaultCountries = []CountryEntry{
	{Name: "India", Cities: []string{"Delhi", "Mumbai", "Bangalore", "Kolkata"}},
	{Name: "USA", Cities: []string{"New York", "Los Angeles", "Chicago", "Houston"}},
	{Name: "Canada", Cities: []string{"Toronto", "Vancouver", "Montreal", "Calgary"}},
	{Name: "UK", Cities: []string{"London", "Manchester", "Birmingham", "Glasgow"}},
}

// DefaultDirectory returns the built-in country directory.
func DefaultDirectory() Directory {
	d, _ := NewDirectory(defaultCountries)
	return d
}

// NewDirectory validates and copies countries into a Directory.
// Country names must be non-blank and unique, every country needs at least
// one city, and cities must be non-blank and unique within their country.
func NewDirectory(countries []CountryEntry) (Directory, error) {
	if len(countries) == 0 {
		return Directory{}, errors.New("directory needs at least one country")
	}

	seen := make(map[string]bool, len(countries))
	out := make([]CountryEntry, 0, len(countries))
	for i, c := range countries {
		if strings.TrimSpace(c.Name) == "" {
			return Directory{}, fmt.Errorf("country %d: name is required", i)
		}
		if seen[c.Name] {
			return Directory{}, fmt.Errorf("country %q: listed more than once", c.Name)
		}
		seen[c.Name] = true

		if len(c.Cities) == 0 {
			return Directory{}, fmt.Errorf("country %q: at least one city is required", c.Name)
		}
		citySeen := make(map[string]bool, len(c.Cities))
		for j, city := range c.Cities {
			if strings.TrimSpace(city) == "" {
				return Directory{}, fmt.Errorf("country %q: city %d is blank", c.Name, j)
			}
			if citySeen[city] {
				return Directory{}, fmt.Errorf("country %q: city %q listed more than once", c.Name, city)
			}
			citySeen[city] = true
		}
		out = append(out, CountryEntry{Name: c.Name, Cities: slices.Clone(c.Cities)})
	}
	return Directory{countries: out}, nil
}

// Countries returns the country names in directory order.
func (d Directory) Countries() []string {
	names := make([]string, len(d.countries))
	for i, c := range d.countries {
		names[i] = c.Name
	}
	return names
}

// Cities returns the cities for a country, or nil for an unknown country.
func (d Directory) Cities(country string) []string {
	for _, c := range d.countries {
		if c.Name == country {
			return slices.Clone(c.Cities)
		}
	}
	return nil
}

// HasCountry reports whether country is a directory key.
func (d Directory) HasCountry(country string) bool {
	for _, c := range d.countries {
		if c.Name == country {
			return true
		}
	}
	return false
}

// HasCity reports whether city belongs to country.
func (d Directory) HasCity(country, city string) bool {
	return slices.Contains(d.Cities(country), city)
}
