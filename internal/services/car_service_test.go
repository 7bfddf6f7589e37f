package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/domain/ports"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
	"github.com/rafabene/carmarket-backend/internal/domain/valueobjects"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/carmarket-backend/internal/services"
	"github.com/rafabene/carmarket-backend/internal/testutil"
)

// noopLogger descarta tudo; os specs não inspecionam logs
type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

// failingImageRepo injeta falha no passo de criação de imagens para
// exercitar o rollback da transação de publicação
type failingImageRepo struct {
	repositories.ImageRepository
}

func (failingImageRepo) CreateBatch(context.Context, []*entities.Image) error {
	return errors.New("disk full")
}

// countingUserRepo conta escritas de usuário dentro da transação
type countingUserRepo struct {
	repositories.UserRepository
	updates int
}

func (r *countingUserRepo) Update(ctx context.Context, user *entities.User) error {
	r.updates++
	return r.UserRepository.Update(ctx, user)
}

var _ = Describe("CarService", func() {
	var (
		ctx       context.Context
		db        *gorm.DB
		userRepo  repositories.UserRepository
		carRepo   repositories.CarRepository
		imageRepo repositories.ImageRepository
		uow       ports.UnitOfWork
		service   *services.CarService
	)

	newBuyer := func(address string) *entities.User {
		email, err := valueobjects.NewEmail(address)
		Expect(err).NotTo(HaveOccurred())

		user := &entities.User{
			Email:        email,
			Name:         "Comprador Teste",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			Role:         entities.RoleBuyer,
		}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user
	}

	newInput := func() services.SubmitListingInput {
		price, err := decimal.NewFromString("98500.00")
		Expect(err).NotTo(HaveOccurred())

		return services.SubmitListingInput{
			Make:         "Honda",
			CarModel:     "Civic",
			Year:         2019,
			Color:        "Preto",
			Mileage:      58200,
			Price:        price,
			VIN:          "9BWZZZ377VT004251",
			FuelType:     entities.FuelGasoline,
			Transmission: entities.TransmissionManual,
		}
	}

	storedFiles := func(n int) []ports.StoredFile {
		files := make([]ports.StoredFile, 0, n)
		for i := 0; i < n; i++ {
			files = append(files, ports.StoredFile{
				OriginalName: "frente.jpg",
				FileName:     "a1b2c3.jpg",
				MimeType:     "image/jpeg",
				Encoding:     "7bit",
				Size:         204800,
				URL:          "http://localhost:9000/car-images/a1b2c3.jpg",
			})
		}
		return files
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = testutil.OpenTestDatabase()
		Expect(err).NotTo(HaveOccurred())
		Expect(testutil.Clean(db)).To(Succeed())

		userRepo = postgres.NewUserRepository(db)
		carRepo = postgres.NewCarRepository(db)
		imageRepo = postgres.NewImageRepository(db)
		uow = postgres.NewUnitOfWork(db)
		service = services.NewCarService(carRepo, imageRepo, userRepo, uow, noopLogger{})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("SubmitListing", func() {
		It("publica o anúncio com as imagens anexadas", func() {
			buyer := newBuyer("ana@example.com")

			car, err := service.SubmitListing(ctx, buyer.ID, newInput(), storedFiles(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(car.ID).NotTo(BeEmpty())
			Expect(car.AvailabilityStatus).To(Equal(entities.StatusAvailable))

			images, err := imageRepo.FindByCarID(ctx, car.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(images).To(HaveLen(2))
			Expect(images[0].Size).To(Equal(int64(204800)))
		})

		It("promove o comprador a vendedor na primeira publicação", func() {
			buyer := newBuyer("bruno@example.com")

			_, err := service.SubmitListing(ctx, buyer.ID, newInput(), nil)
			Expect(err).NotTo(HaveOccurred())

			reloaded, err := userRepo.FindByID(ctx, buyer.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Role).To(Equal(entities.RoleSeller))
		})

		It("não reescreve o papel de quem já é vendedor", func() {
			buyer := newBuyer("carla@example.com")

			_, err := service.SubmitListing(ctx, buyer.ID, newInput(), nil)
			Expect(err).NotTo(HaveOccurred())

			counting := &countingUserRepo{UserRepository: userRepo}
			service = services.NewCarService(carRepo, imageRepo, counting, uow, noopLogger{})

			_, err = service.SubmitListing(ctx, buyer.ID, newInput(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(counting.updates).To(BeZero())
		})

		It("reverte tudo quando a criação de imagens falha", func() {
			buyer := newBuyer("diego@example.com")

			service = services.NewCarService(carRepo, failingImageRepo{imageRepo}, userRepo, uow, noopLogger{})

			_, err := service.SubmitListing(ctx, buyer.ID, newInput(), storedFiles(1))
			Expect(err).To(HaveOccurred())

			var txErr *apperrors.TransactionError
			Expect(errors.As(err, &txErr)).To(BeTrue())
			Expect(txErr.Op).To(Equal("create images"))

			// Nenhum estado parcial: nem o carro nem a promoção persistem
			count, err := carRepo.Count(ctx, repositories.CarFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			reloaded, err := userRepo.FindByID(ctx, buyer.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Role).To(Equal(entities.RoleBuyer))
		})

		It("rejeita vendedor inexistente", func() {
			_, err := service.SubmitListing(ctx, "3f0e53fc-0000-0000-0000-000000000000", newInput(), nil)
			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})

		It("preserva a precisão decimal do preço", func() {
			buyer := newBuyer("elisa@example.com")

			input := newInput()
			price, err := decimal.NewFromString("400000.00")
			Expect(err).NotTo(HaveOccurred())
			input.Price = price

			car, err := service.SubmitListing(ctx, buyer.ID, input, nil)
			Expect(err).NotTo(HaveOccurred())

			details, err := service.GetCarDetails(ctx, car.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Car.Price.Equal(price)).To(BeTrue(),
				"expected %s, got %s", price, details.Car.Price)
		})
	})

	Describe("GetCarDetails", func() {
		It("retorna o anúncio com vendedor e imagens", func() {
			buyer := newBuyer("fabio@example.com")

			car, err := service.SubmitListing(ctx, buyer.ID, newInput(), storedFiles(3))
			Expect(err).NotTo(HaveOccurred())

			details, err := service.GetCarDetails(ctx, car.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Car.ID).To(Equal(car.ID))
			Expect(details.Seller.ID).To(Equal(buyer.ID))
			Expect(details.Seller.Email).To(Equal("fabio@example.com"))
			Expect(details.Images).To(HaveLen(3))
		})

		It("retorna ErrCarNotFound para id desconhecido", func() {
			_, err := service.GetCarDetails(ctx, "7c89a7e2-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(apperrors.ErrCarNotFound))
		})
	})

	Describe("SearchCars", func() {
		seedCars := func(n int) {
			seller := newBuyer("gustavo@example.com")
			base := time.Now().Add(-time.Duration(n) * time.Minute)
			for i := 0; i < n; i++ {
				price := decimal.NewFromInt(int64(50000 + i*1000))
				car := &entities.Car{
					SellerID:           seller.ID,
					Make:               "Toyota",
					CarModel:           "Corolla",
					Year:               2015 + i%10,
					Color:              "Prata",
					Mileage:            10000 * (i + 1),
					Price:              price,
					VIN:                "JTDBU4EE9A9123456",
					FuelType:           entities.FuelGasoline,
					Transmission:       entities.TransmissionAutomatic,
					AvailabilityStatus: entities.StatusAvailable,
					CreatedAt:          base.Add(time.Duration(i) * time.Minute),
				}
				Expect(carRepo.Create(ctx, car)).To(Succeed())
			}
		}

		It("monta o envelope de paginação com links de página", func() {
			seedCars(25)

			page, err := service.SearchCars(ctx, repositories.CarFilters{Page: 2, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Count).To(Equal(int64(25)))
			Expect(page.CurrentPage).To(Equal(2))
			Expect(page.Data).To(HaveLen(10))
			Expect(page.NextPage).To(HaveValue(Equal(3)))
			Expect(page.PrevPage).To(HaveValue(Equal(1)))

			// Fatia do meio na ordenação padrão (mais recente primeiro):
			// a página 2 pula os 10 mais novos
			Expect(page.Data[0].Mileage).To(Equal(150000))
			Expect(page.Data[9].Mileage).To(Equal(60000))
		})

		It("omite os links nas bordas", func() {
			seedCars(5)

			page, err := service.SearchCars(ctx, repositories.CarFilters{Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.NextPage).To(BeNil())
			Expect(page.PrevPage).To(BeNil())
		})

		It("ordena por data de criação descendente por padrão", func() {
			seedCars(3)

			page, err := service.SearchCars(ctx, repositories.CarFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(HaveLen(3))
			// O mais recente (maior mileage no seed) vem primeiro
			Expect(page.Data[0].Mileage).To(Equal(30000))
			Expect(page.Data[2].Mileage).To(Equal(10000))
		})

		It("aplica defaults de página e limite", func() {
			seedCars(12)

			page, err := service.SearchCars(ctx, repositories.CarFilters{Page: 0, Limit: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.CurrentPage).To(Equal(1))
			Expect(page.Data).To(HaveLen(10))
		})
	})
})
