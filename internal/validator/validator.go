package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/manaview/internal/card"
	"github.com/arcanaland/manaview/internal/collection"
	"github.com/arcanaland/manaview/internal/mana"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks a collection file: header fields, card fields, rarity
// values, mana cost notation and artwork sources. Problems that keep the
// viewer from working are errors; degraded-but-viewable issues are
// warnings.
func (v *Validator) Validate() (ValidationResults, error) {
	file, err := v.decode()
	if err != nil {
		return v.Results, err
	}

	v.validateHeader(file)
	v.validateCards(file)

	return v.Results, nil
}

func (v *Validator) decode() (*collection.CollectionFile, error) {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("collection file not found: %s", v.Path)
	}

	var file collection.CollectionFile
	if _, err := toml.DecodeFile(v.Path, &file); err != nil {
		return nil, fmt.Errorf("error parsing collection file: %v", err)
	}
	return &file, nil
}

func (v *Validator) validateHeader(file *collection.CollectionFile) {
	if file.Collection.ID == "" {
		v.Results.Errors = append(v.Results.Errors, "collection.id is required")
	}

	if file.Collection.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "collection.name is missing")
	}

	if file.Collection.SchemaVersion == "" {
		v.Results.Errors = append(v.Results.Errors, "collection.schema_version is required")
	} else if file.Collection.SchemaVersion != "1.0" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported schema_version: %s (supported: 1.0)", file.Collection.SchemaVersion))
	}

	if len(file.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "collection contains no cards")
	}
}

func (v *Validator) validateCards(file *collection.CollectionFile) {
	seen := make(map[string]bool)

	for i, entry := range file.Cards {
		label := entry.Name
		if label == "" {
			label = fmt.Sprintf("card #%d", i+1)
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: name is required", label))
		}

		id := entry.ID
		if id == "" {
			id = collection.Slug(entry.Name)
		}
		if id != "" {
			if seen[id] {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s: duplicate card id %q", label, id))
			}
			seen[id] = true
		}

		if entry.Rarity != "" && !card.KnownRarity(entry.Rarity) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: unrecognized rarity %q (renders with the default badge)", label, entry.Rarity))
		}

		if entry.ManaCost != "" && !mana.Balanced(entry.ManaCost) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: mana cost %q has unbalanced braces", label, entry.ManaCost))
		}

		if entry.Images.Large == "" && entry.Images.Normal == "" &&
			entry.Images.Small == "" && entry.ImageURL == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: no artwork sources (the fallback frame will be shown)", label))
		}

		if (entry.Power == "") != (entry.Toughness == "") {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: power and toughness must be set together", label))
		}
	}
}
