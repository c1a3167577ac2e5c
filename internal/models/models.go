package models

import "time"

// Order lifecycle. An order never leaves this set once created.
const (
	OrderStatusPending   = "pending"
	OrderStatusContacted = "contacted"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusContacted, OrderStatusConfirmed,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Phone        string    `gorm:"unique;not null"          json:"phone"`
	ShopName     string    `gorm:"not null"                 json:"shop_name"`
	Address      string    `gorm:"not null"                 json:"address"`
	Pincode      string    `gorm:"not null"                 json:"pincode"`
	GSTNumber    *string   `json:"gst_number,omitempty"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"not null"                 json:"name"`
	Slug          string        `gorm:"uniqueIndex;not null"     json:"slug"`
	Image         string        `json:"image"`
	SortOrder     int           `gorm:"default:0"                json:"sort_order"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sub_categories,omitempty"`
}

type SubCategory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"index;not null"           json:"category_id"`
	Name       string    `gorm:"not null"                 json:"name"`
	Slug       string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Image      string    `json:"image"`
	SortOrder  int       `gorm:"default:0"                json:"sort_order"`
	Category   *Category `gorm:"foreignKey:CategoryID"    json:"category,omitempty"`
	Products   []Product `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

type Product struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	SubCategoryID  uint         `gorm:"index;not null"           json:"sub_category_id"`
	Name           string       `gorm:"not null"                 json:"name"`
	Slug           string       `gorm:"uniqueIndex;not null"     json:"slug"`
	Description    string       `json:"description"`
	HasColorChoice bool         `gorm:"default:false"            json:"has_color_choice"`
	CreatedAt      time.Time    `json:"created_at"`
	SubCategory    *SubCategory `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Designs        []Design     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"designs,omitempty"`
	Colors         []Color      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"colors,omitempty"`
}

// Design is a visual variant of a product, each with its own image.
type Design struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint     `gorm:"index;not null"           json:"product_id"`
	Name      string   `gorm:"not null"                 json:"name"`
	Image     string   `json:"image"`
	SortOrder int      `gorm:"default:0"                json:"sort_order"`
	Product   *Product `gorm:"foreignKey:ProductID"     json:"product,omitempty"`
}

// Color is an optional per-product color variant, independent of design.
type Color struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null"           json:"product_id"`
	ColorName string `gorm:"not null"                 json:"color_name"`
	ColorHex  string `json:"color_hex"`
}

// CartItem holds one (design, color) line of a user's cart. At most one row
// exists per (user, design, color) tuple; duplicates merge by quantity.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID    uint      `gorm:"index;not null"              json:"user_id"`
	DesignID  uint      `gorm:"not null"                    json:"design_id"`
	ColorID   *uint     `json:"color_id,omitempty"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"  json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	Design    *Design   `gorm:"foreignKey:DesignID"         json:"design,omitempty"`
	Color     *Color    `gorm:"foreignKey:ColorID"          json:"color,omitempty"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint        `gorm:"index;not null"           json:"user_id"`
	Status    string      `gorm:"not null;default:pending" json:"status"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
	User      *User       `gorm:"foreignKey:UserID"        json:"user,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem is a snapshot of a cart line at order time. Rows are only ever
// created together with their order.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  uint    `gorm:"index;not null"           json:"order_id"`
	DesignID uint    `gorm:"not null"                 json:"design_id"`
	ColorID  *uint   `json:"color_id,omitempty"`
	Quantity uint    `gorm:"not null"                 json:"quantity"`
	Design   *Design `gorm:"foreignKey:DesignID"      json:"design,omitempty"`
	Color    *Color  `gorm:"foreignKey:ColorID"       json:"color,omitempty"`
}

type SiteConfig struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string `gorm:"uniqueIndex;not null"     json:"key"`
	Value string `gorm:"not null"                 json:"value"`
	Type  string `gorm:"default:text"             json:"type"`
}

// All is the migration set, ordered parents first.
func All() []any {
	return []any{
		&User{}, &Admin{},
		&Category{}, &SubCategory{}, &Product{}, &Design{}, &Color{},
		&CartItem{}, &Order{}, &OrderItem{},
		&SiteConfig{},
	}
}
