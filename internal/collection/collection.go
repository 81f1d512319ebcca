package collection

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/manaview/internal/card"
)

// Collection represents a set of cards loaded from a collection file.
type Collection struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	cards map[string]*card.Card
	order []string
}

// Load reads a collection from a TOML file.
func Load(path string) (*Collection, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("collection file not found: %s", path)
	}

	var file CollectionFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error parsing collection file: %v", err)
	}

	col := &Collection{
		ID:          file.Collection.ID,
		Name:        file.Collection.Name,
		Version:     file.Collection.Version,
		Author:      file.Collection.Author,
		Description: file.Collection.Description,
		Path:        path,
		cards:       make(map[string]*card.Card),
	}

	if col.Name == "" {
		col.Name = col.ID
	}

	for _, entry := range file.Cards {
		c := entry.toCard()
		if c.ID == "" {
			c.ID = Slug(c.Name)
		}
		if _, exists := col.cards[c.ID]; exists {
			continue // First entry wins; the validator reports duplicates
		}
		col.cards[c.ID] = c
		col.order = append(col.order, c.ID)
	}

	return col, nil
}

// GetCard gets a card by its identifier. A lookup that misses on ID falls
// back to a case-insensitive match on the card name.
func (c *Collection) GetCard(id string) (*card.Card, error) {
	if found, ok := c.cards[id]; ok {
		return found, nil
	}
	if found, ok := c.cards[Slug(id)]; ok {
		return found, nil
	}
	for _, cardID := range c.order {
		if strings.EqualFold(c.cards[cardID].Name, id) {
			return c.cards[cardID], nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", id)
}

// Cards returns the cards in file order.
func (c *Collection) Cards() []*card.Card {
	cards := make([]*card.Card, 0, len(c.order))
	for _, id := range c.order {
		cards = append(cards, c.cards[id])
	}
	return cards
}

// Size returns the number of cards in the collection.
func (c *Collection) Size() int {
	return len(c.order)
}

// Slug normalizes a card name into an identifier: lowercased, spaces as
// dashes, punctuation dropped.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// Collection file structures

type CollectionFile struct {
	Collection CollectionSection `toml:"collection"`
	Cards      []CardEntry       `toml:"cards"`
}

type CollectionSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	SchemaVersion string `toml:"schema_version"`
	Author        string `toml:"author"`
	Description   string `toml:"description"`
}

type CardEntry struct {
	ID        string      `toml:"id"`
	Name      string      `toml:"name"`
	ManaCost  string      `toml:"mana_cost"`
	Type      string      `toml:"type"`
	Rarity    string      `toml:"rarity"`
	SetCode   string      `toml:"set_code"`
	SetName   string      `toml:"set_name"`
	Text      string      `toml:"text"`
	Power     string      `toml:"power"`
	Toughness string      `toml:"toughness"`
	Loyalty   string      `toml:"loyalty"`
	ImageURL  string      `toml:"image_url"`
	Images    ImagesEntry `toml:"images"`
}

type ImagesEntry struct {
	Small  string `toml:"small"`
	Normal string `toml:"normal"`
	Large  string `toml:"large"`
}

func (e *CardEntry) toCard() *card.Card {
	return &card.Card{
		ID:        e.ID,
		Name:      e.Name,
		ManaCost:  e.ManaCost,
		Type:      e.Type,
		Rarity:    strings.ToLower(e.Rarity),
		SetCode:   e.SetCode,
		SetName:   e.SetName,
		Text:      e.Text,
		Power:     e.Power,
		Toughness: e.Toughness,
		Loyalty:   e.Loyalty,
		ImageURL:  e.ImageURL,
		Images: card.ImageURIs{
			Small:  e.Images.Small,
			Normal: e.Images.Normal,
			Large:  e.Images.Large,
		},
	}
}
