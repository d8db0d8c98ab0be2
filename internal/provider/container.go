package provider

import (
	"github.com/vastra-store/internal/cache"
	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/queue"
	"github.com/vastra-store/internal/repository"
	"github.com/vastra-store/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	AddressRepo  repository.AddressRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository

	// Services
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	WishlistService *service.WishlistService
	AddressService  *service.AddressService
	OrderService    *service.OrderService
	PaymentService  *service.PaymentService
	ReviewService   *service.ReviewService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.Config.Catalog)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.Config.Order)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.AddressRepo, c.QueueClient, c.Config.Order)
	c.PaymentService = service.NewPaymentService(c.OrderRepo, c.OrderService, c.Config.Razorpay)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
}
