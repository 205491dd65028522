package category

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/IanTeda/personal-ledger/engine/core"
)

// Type is the accounting classification of a category. It determines how
// transactions in the category affect financial statements.
type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeIncome    Type = "income"
	TypeExpense   Type = "expense"
	TypeEquity    Type = "equity"
)

// IsValid checks if the category type is one of the known classifications.
func (t Type) IsValid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeIncome, TypeExpense, TypeEquity:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// ParseType validates s (case-insensitively) as a category type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid category type: %q", s)
	}
	return t, nil
}

// codeRe matches the structured category code: three dot-separated groups of
// three uppercase alphanumeric characters, e.g. "ABC.DEF.GHI".
var codeRe = regexp.MustCompile(`^[A-Z0-9]{3}\.[A-Z0-9]{3}\.[A-Z0-9]{3}$`)

// ValidateCode checks that code follows the XXX.XXX.XXX format.
func ValidateCode(code string) error {
	if !codeRe.MatchString(code) {
		return fmt.Errorf("invalid category code (want XXX.XXX.XXX): %q", code)
	}
	return nil
}

// Category is a user-defined classification for ledger transactions, mapped
// one-to-one onto the categories table.
type Category struct {
	// ID is the time-ordered primary key; immutable after creation.
	ID core.ID `json:"id"                    db:"id"`
	// Code is the structured alphanumeric identifier (XXX.XXX.XXX); unique.
	Code string `json:"code"                  db:"code"`
	// Name is the human-readable display name.
	Name string `json:"name"                  db:"name"`
	// Description optionally explains when and how to use the category.
	Description *string `json:"description,omitempty" db:"description"`
	// URLSlug is a URL-safe identifier; unique when present.
	URLSlug *core.Slug `json:"url_slug,omitempty"    db:"url_slug"`
	// Type is the accounting classification.
	Type Type `json:"category_type"         db:"category_type"`
	// Color optionally themes the category in UIs (#RRGGBB).
	Color *core.HexColor `json:"color,omitempty"       db:"color"`
	// Icon optionally references an icon in the application's icon library.
	Icon *string `json:"icon,omitempty"        db:"icon"`
	// IsActive is the soft-delete flag; false deactivates without deleting.
	IsActive bool `json:"is_active"             db:"is_active"`
	// CreatedOn is set once at insert and never mutated.
	CreatedOn time.Time `json:"created_on"            db:"created_on"`
	// UpdatedOn is refreshed on every mutation; monotonically non-decreasing.
	UpdatedOn time.Time `json:"updated_on"            db:"updated_on"`
}

// New creates an active category with a fresh ID and UTC timestamps.
func New(code, name string, categoryType Type) (*Category, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}
	if !categoryType.IsValid() {
		return nil, fmt.Errorf("invalid category type: %q", categoryType)
	}
	id, err := core.NewID()
	if err != nil {
		return nil, fmt.Errorf("generating category ID: %w", err)
	}
	now := time.Now().UTC()
	return &Category{
		ID:        id,
		Code:      code,
		Name:      name,
		Type:      categoryType,
		IsActive:  true,
		CreatedOn: now,
		UpdatedOn: now,
	}, nil
}

// WithSlug sets the URL slug derived from the category name.
func (c *Category) WithSlug() *Category {
	slug := core.NewSlug(c.Name)
	c.URLSlug = &slug
	return c
}
