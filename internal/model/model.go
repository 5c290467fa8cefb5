package model

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type OrderStatus string

const (
	OrderPending              OrderStatus = "pending"
	OrderAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderShipped              OrderStatus = "shipped"
	OrderDelivered            OrderStatus = "delivered"
)

// KnownOrderStatus reports whether s is one of the four order states.
// Transitions between known states are deliberately unconstrained; sellers
// may move an order backwards (e.g. shipped -> pending) to correct mistakes.
func KnownOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderAwaitingConfirmation, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

type RecipientKind string

const (
	RecipientAdmin  RecipientKind = "admin"
	RecipientSeller RecipientKind = "seller"
)

// AdminRecipientKey is the sentinel recipient key addressing the
// administrator; any other key is a seller id.
const AdminRecipientKey = "admin"

type NotificationType string

const (
	NotificationNewOrder             NotificationType = "new_order"
	NotificationNewSellerApplication NotificationType = "new_seller_application"
	NotificationPaymentProof         NotificationType = "payment_proof_submitted"
)

type User struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         Role   `gorm:"size:16;index;not null"`
	FirstName    string `gorm:"size:64"`
	LastName     string `gorm:"size:64"`
	Phone        string `gorm:"size:32"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SellerApplication struct {
	ID             string `gorm:"primaryKey;size:64;not null"`
	FirstName      string `gorm:"size:64;not null"`
	LastName       string `gorm:"size:64;not null"`
	Email          string `gorm:"size:128;index;not null"`
	Phone          string `gorm:"size:32"`
	Whatsapp       string `gorm:"size:32"`
	CompanyName    string `gorm:"size:128;not null"`
	Address        string `gorm:"size:256"`
	Activity       string `gorm:"size:128"`
	WhyPlatform    string `gorm:"type:text"`
	PasswordHash   string `gorm:"size:128;not null"`
	ProfilePicture string `gorm:"size:512"`
	BannerPicture  string `gorm:"size:512"`
	Status         ApplicationStatus `gorm:"size:16;index;not null"`
	SubmittedAt    time.Time         `gorm:"index;not null"`
}

// Seller is the public storefront created when an application is approved.
// ID equals the user id the seller signs in with; ownership checks compare
// the session user id against it.
type Seller struct {
	ID             string `gorm:"primaryKey;size:64;not null"`
	CompanyName    string `gorm:"size:128;not null"`
	FirstName      string `gorm:"size:64"`
	LastName       string `gorm:"size:64"`
	Email          string `gorm:"size:128;index;not null"`
	Phone          string `gorm:"size:32"`
	Whatsapp       string `gorm:"size:32"`
	Address        string `gorm:"size:256"`
	ProfilePicture string `gorm:"size:512"`
	BannerPicture  string `gorm:"size:512"`
	ImageHint      string `gorm:"size:64"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null"`
	SellerID    string `gorm:"size:64;index;not null"`
	// SellerName is snapshotted at creation; a later company rename does
	// not rewrite existing products.
	SellerName       string `gorm:"size:128;not null"`
	Name             string `gorm:"size:128;not null"`
	Description      string `gorm:"type:text"`
	Price            int64  `gorm:"not null"`
	PromotionalPrice *int64
	Image            string `gorm:"size:512"`
	ImageHint        string `gorm:"size:64"`
	Version          int64  `gorm:"not null;default:1"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// EffectivePrice is the price a buyer pays: promotional when set.
func (p *Product) EffectivePrice() int64 {
	if p.PromotionalPrice != nil {
		return *p.PromotionalPrice
	}
	return p.Price
}

type BuyerInfo struct {
	FirstName string `gorm:"size:64" json:"firstName"`
	LastName  string `gorm:"size:64" json:"lastName"`
	Email     string `gorm:"size:128" json:"email"`
	Phone     string `gorm:"size:32" json:"phone"`
	Address   string `gorm:"size:256" json:"address"`
}

// Order freezes the product, price and seller contact at purchase time.
type Order struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	ProductID    string `gorm:"size:64;index;not null"`
	ProductName  string `gorm:"size:128;not null"`
	ProductImage string `gorm:"size:512"`
	Price        int64  `gorm:"not null"`
	Quantity     int    `gorm:"not null"`
	SellerID     string `gorm:"size:64;index;not null"`
	SellerPhone  string `gorm:"size:32"`
	BuyerID      string    `gorm:"size:64;index;not null"`
	BuyerInfo    BuyerInfo `gorm:"embedded;embeddedPrefix:buyer_"`
	Status       OrderStatus `gorm:"size:32;index;not null"`
	PaymentProof string      `gorm:"type:text"`
	OrderDate    time.Time   `gorm:"index;not null"`
	Version      int64       `gorm:"not null;default:1"`
	UpdatedAt    time.Time
}

type Notification struct {
	ID            string           `gorm:"primaryKey;size:64;not null"`
	RecipientKind RecipientKind    `gorm:"size:16;index;not null"`
	RecipientID   string           `gorm:"size:64;index"`
	Type          NotificationType `gorm:"size:32;not null"`
	Message       string           `gorm:"size:512;not null"`
	Link          string           `gorm:"size:256"`
	IsRead        bool             `gorm:"index;not null"`
	CreatedAt     time.Time        `gorm:"index"`
}

// AdminProfile is a singleton row keyed by AdminProfileID.
type AdminProfile struct {
	ID        string `gorm:"primaryKey;size:16;not null"`
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Email     string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Whatsapp  string `gorm:"size:32"`
	Bio       string `gorm:"type:text"`
	UpdatedAt time.Time
}

const AdminProfileID = "admin"
