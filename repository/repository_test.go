package repository_test

import (
	"context"
	"testing"

	"foodapp-api/errs"
	"foodapp-api/models"
	"foodapp-api/repository"
	"foodapp-api/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	orders      repository.OrderRepository
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.db = testutil.NewSeededDB(s.T())
	s.users = repository.NewUserRepository(s.db)
	s.restaurants = repository.NewRestaurantRepository(s.db)
	s.orders = repository.NewOrderRepository(s.db)
}

func (s *RepositoryTestSuite) createOrder(userID uint, country models.Country, status models.OrderStatus) *models.Order {
	order := &models.Order{
		UserID:     userID,
		Country:    country,
		Status:     status,
		TotalCents: 1000,
		Items: []models.OrderItem{
			{MenuItemID: testutil.PaneerTikkaID, Quantity: 2, PriceEachCents: 500, Name: "Paneer Tikka"},
		},
	}
	s.Require().NoError(s.orders.Create(context.Background(), order))
	return order
}

func (s *RepositoryTestSuite) TestUsers() {
	ctx := context.Background()

	user, err := s.users.FindByEmail(ctx, "  Carol@Slooze.xyz ")
	s.Require().NoError(err)
	s.Equal(testutil.ManagerIndiaID, user.ID)

	exists, err := s.users.ExistsByEmail(ctx, "THOR@slooze.xyz")
	s.Require().NoError(err)
	s.True(exists)

	_, err = s.users.FindByID(ctx, 999)
	s.ErrorIs(err, errs.ErrNotFound)

	updated, err := s.users.UpdatePaymentMethod(ctx, testutil.MemberUSID, "AMEX **** 0005")
	s.Require().NoError(err)
	s.Require().NotNil(updated.PaymentMethod)
	s.Equal("AMEX **** 0005", *updated.PaymentMethod)

	_, err = s.users.UpdatePaymentMethod(ctx, 999, "AMEX")
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUsers_CreateDuplicateEmail() {
	ctx := context.Background()
	user := &models.User{
		Name:         "Carol Again",
		Email:        " CAROL@slooze.xyz",
		PasswordHash: "x",
		Role:         models.RoleMember,
		Country:      models.CountryIndia,
	}

	err := s.users.Create(ctx, user)
	s.Require().ErrorIs(err, errs.ErrConflict)
	s.Equal("Email already registered", errs.PublicMessage(err))
}

func (s *RepositoryTestSuite) TestRestaurants_Scoped() {
	ctx := context.Background()
	america := models.CountryAmerica

	all, err := s.restaurants.List(ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 4)

	scoped, err := s.restaurants.List(ctx, &america)
	s.Require().NoError(err)
	s.Require().Len(scoped, 2)
	for _, r := range scoped {
		s.Equal(models.CountryAmerica, r.Country)
		s.NotEmpty(r.MenuItems)
	}

	_, err = s.restaurants.FindByID(ctx, testutil.MumbaiMasalaID, &america)
	s.ErrorIs(err, errs.ErrNotFound)

	r, err := s.restaurants.FindByID(ctx, testutil.NewYorkNoshID, &america)
	s.Require().NoError(err)
	s.Equal("New York Nosh", r.Name)
}

func (s *RepositoryTestSuite) TestFindMenuItems() {
	items, err := s.restaurants.FindMenuItems(context.Background(), []uint{testutil.MasalaDosaID, testutil.CheeseburgerID, 999})
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	for _, it := range items {
		s.Require().NotNil(it.Restaurant)
	}

	empty, err := s.restaurants.FindMenuItems(context.Background(), nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RepositoryTestSuite) TestOrders_CreateAndFind() {
	order := s.createOrder(testutil.MemberIndiaID, models.CountryIndia, models.StatusCreated)
	s.NotZero(order.ID)

	found, err := s.orders.FindByID(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Items, 1)
	s.Require().NotNil(found.Items[0].MenuItem)
	s.Equal("Paneer Tikka", found.Items[0].MenuItem.Name)
}

func (s *RepositoryTestSuite) TestOrders_ListFilters() {
	first := s.createOrder(testutil.MemberIndiaID, models.CountryIndia, models.StatusCreated)
	second := s.createOrder(testutil.MemberIndiaID, models.CountryIndia, models.StatusCreated)
	s.createOrder(testutil.MemberUSID, models.CountryAmerica, models.StatusCreated)
	ctx := context.Background()

	userID := testutil.MemberIndiaID
	mine, err := s.orders.List(ctx, repository.OrderFilter{UserID: &userID})
	s.Require().NoError(err)
	s.Require().Len(mine, 2)
	s.Equal(second.ID, mine[0].ID)
	s.Equal(first.ID, mine[1].ID)

	america := models.CountryAmerica
	us, err := s.orders.List(ctx, repository.OrderFilter{Country: &america})
	s.Require().NoError(err)
	s.Len(us, 1)

	all, err := s.orders.List(ctx, repository.OrderFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *RepositoryTestSuite) TestOrders_UpdateStatusGuarded() {
	order := s.createOrder(testutil.ManagerIndiaID, models.CountryIndia, models.StatusCreated)
	ctx := context.Background()

	paid, err := s.orders.UpdateStatus(ctx, order.ID, []models.OrderStatus{models.StatusCreated}, models.StatusPaid)
	s.Require().NoError(err)
	s.Equal(models.StatusPaid, paid.Status)

	_, err = s.orders.UpdateStatus(ctx, order.ID, []models.OrderStatus{models.StatusCreated}, models.StatusPaid)
	s.ErrorIs(err, repository.ErrStatusMismatch)

	_, err = s.orders.UpdateStatus(ctx, 999, []models.OrderStatus{models.StatusCreated}, models.StatusPaid)
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *RepositoryTestSuite) TestOrders_Delete() {
	order := s.createOrder(testutil.MemberIndiaID, models.CountryIndia, models.StatusPaid)
	ctx := context.Background()

	s.Require().NoError(s.orders.Delete(ctx, order.ID))

	_, err := s.orders.FindByID(ctx, order.ID)
	s.ErrorIs(err, errs.ErrNotFound)

	var items int64
	s.Require().NoError(s.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	s.Zero(items)

	s.ErrorIs(s.orders.Delete(ctx, order.ID), errs.ErrNotFound)
}
