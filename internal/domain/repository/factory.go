package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Verifications() VerificationRepository
	Merchants() MerchantRepository
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
}
