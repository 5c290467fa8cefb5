package dto

import (
	"time"

	"github.com/REBCDR07/marketconnect/internal/model"
)

// -------- auth --------

type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type UserView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// -------- seller applications --------

type SubmitApplicationRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Whatsapp       string `json:"whatsapp"`
	CompanyName    string `json:"company_name"`
	Address        string `json:"address"`
	Activity       string `json:"activity"`
	WhyPlatform    string `json:"why_platform"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profile_picture"`
	BannerPicture  string `json:"banner_picture"`
}

// -------- catalog --------

type ProductRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Price            int64  `json:"price"`
	PromotionalPrice *int64 `json:"promotional_price"`
	Image            string `json:"image"`
	ImageHint        string `json:"image_hint"`
}

type UpdateSellerProfileRequest struct {
	CompanyName    *string `json:"company_name"`
	Phone          *string `json:"phone"`
	Whatsapp       *string `json:"whatsapp"`
	Address        *string `json:"address"`
	ProfilePicture *string `json:"profile_picture"`
	BannerPicture  *string `json:"banner_picture"`
}

type SuggestDescriptionRequest struct {
	Description string `json:"description"`
}

type SuggestDescriptionResponse struct {
	Suggestion string `json:"suggestion"`
}

// -------- orders --------

type CreateOrderRequest struct {
	ProductID string          `json:"product_id"`
	BuyerInfo model.BuyerInfo `json:"buyer_info"`
}

type SetOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type PaymentProofRequest struct {
	// Proof is the payment screenshot inlined as a data URL.
	Proof string `json:"proof"`
}

// -------- notifications --------

type MarkReadRequest struct {
	Recipient string `json:"recipient"`
}

// -------- admin profile --------

type SaveAdminProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Whatsapp  *string `json:"whatsapp"`
	Bio       *string `json:"bio"`
}

// -------- derived views --------

type TopSeller struct {
	Seller       *model.Seller `json:"seller"`
	ProductCount int64         `json:"product_count"`
	SalesCount   int64         `json:"sales_count"`
	Score        int64         `json:"score"`
}

type SellerStats struct {
	TotalSalesAmount int64 `json:"total_sales_amount"`
	TotalOrders      int64 `json:"total_orders"`
	ProductCount     int64 `json:"product_count"`
}

type AdminStats struct {
	PendingApplications int64 `json:"pending_applications"`
	Sellers             int64 `json:"sellers"`
	Orders              int64 `json:"orders"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
