package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/notification"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/internal/application/usecase"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
	infrmail "github.com/jhoicas/ordenes-api/internal/infrastructure/mail"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/ordenes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/postgres"
	infrasms "github.com/jhoicas/ordenes-api/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/ordenes-api/internal/interfaces/http"
	"github.com/jhoicas/ordenes-api/pkg/config"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// storage repositorios y unidades de trabajo del driver elegido.
type storage struct {
	clients    repository.ClientRepository
	products   repository.ProductRepository
	stores     repository.StoreRepository
	roles      repository.RoleRepository
	users      repository.UserRepository
	orders     repository.OrderRepository
	invoices   repository.InvoiceRepository
	dispatches repository.InvoiceDispatchRepository
	orderTx    ordering.OrderTxRunner
	invoiceTx  billing.InvoiceTxRunner
	db         httpRouter.Pinger
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	// Proveedores externos: sin credenciales el envío es simulado y queda en el log.
	var mailer ports.Mailer = infrmail.NewLogMailer(log)
	if cfg.SendGrid.Enabled() {
		mailer = infrmail.NewSendGridMailer(cfg.SendGrid, log)
	} else {
		log.Warn().Msg("SENDGRID_API_KEY vacío: envío de correo simulado")
	}
	var smsSender ports.SMSSender = infrasms.NewLogSender(log)
	if cfg.Twilio.Enabled() {
		smsSender = infrasms.NewTwilioClient(cfg.Twilio, log)
	} else {
		log.Warn().Msg("credenciales de Twilio vacías: envío de SMS simulado")
	}

	invoicePDFUC := billing.NewPDFUseCase(
		st.invoices, st.orders, st.clients, st.stores, st.products, infrapdf.NewMarotoPDFGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Órdenes y Facturación API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Orders:        ordering.NewOrderManager(st.orderTx, st.orders, log),
		Invoices:      billing.NewInvoiceAggregator(st.invoiceTx, st.invoices, log),
		InvoicePDF:    invoicePDFUC,
		Dispatches:    billing.NewDispatchUseCase(invoicePDFUC, st.dispatches, mailer, log),
		Notifications: notification.NewUseCase(mailer, smsSender, log),
		ClientUC:      usecase.NewClientUseCase(st.clients),
		ProductUC:     usecase.NewProductUseCase(st.products),
		StoreUC:       usecase.NewStoreUseCase(st.stores),
		UserUC:        usecase.NewUserUseCase(st.users, st.roles),
		RoleUC:        usecase.NewRoleUseCase(st.roles),
		DB:            st.db,
		Storage:       cfg.Storage.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage conecta PostgreSQL (aplicando schema.sql si DB_AUTO_MIGRATE) o crea el almacén en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		st := memory.New()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &storage{
			clients:    st.Clients(),
			products:   st.Products(),
			stores:     st.Stores(),
			roles:      st.Roles(),
			users:      st.Users(),
			orders:     st.Orders(),
			invoices:   st.Invoices(),
			dispatches: st.Dispatches(),
			orderTx:    st,
			invoiceTx:  st,
			db:         st,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema aplicado")
	}
	txRunner := postgres.NewTxRunner(pool)
	return &storage{
		clients:    postgres.NewClientRepository(pool),
		products:   postgres.NewProductRepository(pool),
		stores:     postgres.NewStoreRepository(pool),
		roles:      postgres.NewRoleRepository(pool),
		users:      postgres.NewUserRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		invoices:   postgres.NewInvoiceRepository(pool),
		dispatches: postgres.NewDispatchRepository(pool),
		orderTx:    txRunner,
		invoiceTx:  txRunner,
		db:         pool,
		close:      pool.Close,
	}, nil
}
