// Package booking 预订服务单元测试
package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appErrors "github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// setupTestDB 创建测试数据库并写入状态字典
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.Staff{},
		&models.Customer{},
		&models.RoomType{},
		&models.RoomStatus{},
		&models.Room{},
		&models.BookingStatus{},
		&models.Booking{},
		&models.CheckIn{},
		&models.CheckOut{},
		&models.Cancellation{},
	)
	require.NoError(t, err)

	statusSvc := NewStatusService(repository.NewBookingStatusRepository(db))
	require.NoError(t, statusSvc.SeedVocabulary(context.Background()))

	return db
}

// setupTestBookingService 创建测试用的 BookingService
func setupTestBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db,
		repository.NewBookingRepository(db),
		repository.NewRoomRepository(db),
		repository.NewCustomerRepository(db),
	)
}

// createTestData 创建房间、客户、员工基础数据
func createTestData(t *testing.T, db *gorm.DB) (*models.Room, *models.Customer, *models.Staff) {
	roomType := &models.RoomType{Name: "标准大床房"}
	require.NoError(t, db.Create(roomType).Error)

	roomStatus := &models.RoomStatus{Name: "空闲"}
	require.NoError(t, db.Create(roomStatus).Error)

	room := &models.Room{
		RoomNo:       "1201",
		Floor:        utils.IntPtr(12),
		RoomTypeID:   roomType.ID,
		RoomStatusID: roomStatus.ID,
		Price:        288.00,
	}
	require.NoError(t, db.Create(room).Error)

	customer := &models.Customer{
		Name:  "王小明",
		Phone: "13800138000",
	}
	require.NoError(t, db.Create(customer).Error)

	role := &models.Role{Name: models.RoleReception}
	require.NoError(t, db.Create(role).Error)

	staff := &models.Staff{
		Username: "frontdesk01",
		Password: "$2a$10$hashedpassword",
		Name:     "前台一号",
		RoleID:   role.ID,
		Status:   models.StaffStatusActive,
	}
	require.NoError(t, db.Create(staff).Error)

	return room, customer, staff
}

// createTestBooking 以指定状态和日期直接写入一条预订
func createTestBooking(t *testing.T, db *gorm.DB, room *models.Room, customer *models.Customer, staff *models.Staff, statusID int64, checkInDate, checkOutDate time.Time) *models.Booking {
	booking := &models.Booking{
		BookingNo:    utils.GenerateBookingNo(),
		BookingDate:  utils.DateOnly(time.Now()),
		CheckInDate:  utils.DateOnly(checkInDate),
		CheckOutDate: utils.DateOnly(checkOutDate),
		RoomID:       room.ID,
		CustomerID:   customer.ID,
		StaffID:      staff.ID,
		StatusID:     statusID,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	t.Run("成功创建预订", func(t *testing.T) {
		checkIn := time.Now().AddDate(0, 0, 3)
		checkOut := time.Now().AddDate(0, 0, 5)

		booking, err := service.CreateBooking(ctx, staff.ID, &CreateBookingRequest{
			RoomID:       room.ID,
			CustomerID:   customer.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
		})
		require.NoError(t, err)

		assert.NotZero(t, booking.ID)
		assert.Equal(t, "BK", booking.BookingNo[:2])
		assert.Equal(t, int64(models.BookingStatusPending), booking.StatusID)
		assert.Equal(t, utils.DateOnly(checkIn), booking.CheckInDate)
		assert.Equal(t, utils.DateOnly(checkOut), booking.CheckOutDate)
		assert.Equal(t, staff.ID, booking.StaffID)
	})

	t.Run("退房日期必须晚于入住日期", func(t *testing.T) {
		day := time.Now().AddDate(0, 0, 3)

		_, err := service.CreateBooking(ctx, staff.ID, &CreateBookingRequest{
			RoomID:       room.ID,
			CustomerID:   customer.ID,
			CheckInDate:  day,
			CheckOutDate: day,
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrInvalidParams.Code, appErr.Code)
	})

	t.Run("房间不存在", func(t *testing.T) {
		_, err := service.CreateBooking(ctx, staff.ID, &CreateBookingRequest{
			RoomID:       99999,
			CustomerID:   customer.ID,
			CheckInDate:  time.Now().AddDate(0, 0, 1),
			CheckOutDate: time.Now().AddDate(0, 0, 2),
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrRoomNotFound.Code, appErr.Code)
	})

	t.Run("客户不存在", func(t *testing.T) {
		_, err := service.CreateBooking(ctx, staff.ID, &CreateBookingRequest{
			RoomID:       room.ID,
			CustomerID:   99999,
			CheckInDate:  time.Now().AddDate(0, 0, 1),
			CheckOutDate: time.Now().AddDate(0, 0, 2),
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrCustomerNotFound.Code, appErr.Code)
	})
}

func TestGetBooking(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	booking := createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

	t.Run("返回预订及关联信息", func(t *testing.T) {
		got, err := service.GetBooking(ctx, booking.ID)
		require.NoError(t, err)

		assert.Equal(t, booking.BookingNo, got.BookingNo)
		require.NotNil(t, got.Room)
		assert.Equal(t, "1201", got.Room.RoomNo)
		require.NotNil(t, got.Customer)
		assert.Equal(t, "王小明", got.Customer.Name)
		require.NotNil(t, got.Status)
		assert.Equal(t, "Pending", got.Status.Name)
	})

	t.Run("预订不存在", func(t *testing.T) {
		_, err := service.GetBooking(ctx, 99999)
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingNotFound.Code, appErr.Code)
	})
}

func TestGetBookingByNo(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	booking := createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

	t.Run("按预订号查询", func(t *testing.T) {
		got, err := service.GetBookingByNo(ctx, booking.BookingNo)
		require.NoError(t, err)
		assert.Equal(t, booking.ID, got.ID)
	})

	t.Run("预订号不存在", func(t *testing.T) {
		_, err := service.GetBookingByNo(ctx, "BK00000000000000000000")
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingNotFound.Code, appErr.Code)
	})
}

func TestUpdateBooking(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	t.Run("待确认预订可以修改日期", func(t *testing.T) {
		booking := createTestBooking(t, db, room, customer, staff,
			models.BookingStatusPending,
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

		newCheckOut := time.Now().AddDate(0, 0, 5)
		got, err := service.UpdateBooking(ctx, booking.ID, &UpdateBookingRequest{
			CheckOutDate: utils.TimePtr(newCheckOut),
		})
		require.NoError(t, err)
		assert.Equal(t, utils.DateOnly(newCheckOut), got.CheckOutDate)
	})

	t.Run("已确认预订拒绝修改", func(t *testing.T) {
		booking := createTestBooking(t, db, room, customer, staff,
			models.BookingStatusConfirmed,
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

		_, err := service.UpdateBooking(ctx, booking.ID, &UpdateBookingRequest{
			CheckOutDate: utils.TimePtr(time.Now().AddDate(0, 0, 5)),
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingStatusError.Code, appErr.Code)
	})

	t.Run("修改后日期非法", func(t *testing.T) {
		booking := createTestBooking(t, db, room, customer, staff,
			models.BookingStatusPending,
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

		_, err := service.UpdateBooking(ctx, booking.ID, &UpdateBookingRequest{
			CheckOutDate: utils.TimePtr(time.Now().AddDate(0, 0, 1)),
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrInvalidParams.Code, appErr.Code)
	})

	t.Run("换到不存在的房间", func(t *testing.T) {
		booking := createTestBooking(t, db, room, customer, staff,
			models.BookingStatusPending,
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

		_, err := service.UpdateBooking(ctx, booking.ID, &UpdateBookingRequest{
			RoomID: utils.Int64Ptr(99999),
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrRoomNotFound.Code, appErr.Code)
	})

	t.Run("预订不存在", func(t *testing.T) {
		_, err := service.UpdateBooking(ctx, 99999, &UpdateBookingRequest{})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingNotFound.Code, appErr.Code)
	})
}

func TestDeleteBooking(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	t.Run("删除预订", func(t *testing.T) {
		booking := createTestBooking(t, db, room, customer, staff,
			models.BookingStatusPending,
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

		err := service.DeleteBooking(ctx, booking.ID)
		require.NoError(t, err)

		var count int64
		db.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("预订不存在", func(t *testing.T) {
		err := service.DeleteBooking(ctx, 99999)
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingNotFound.Code, appErr.Code)
	})
}

func TestListBookings(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))
	createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 2), time.Now().AddDate(0, 0, 4))
	createTestBooking(t, db, room, customer, staff,
		models.BookingStatusConfirmed,
		time.Now().AddDate(0, 0, 3), time.Now().AddDate(0, 0, 5))

	t.Run("无条件返回全部", func(t *testing.T) {
		bookings, total, err := service.ListBookings(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, bookings, 3)
		assert.Equal(t, int64(3), total)
	})

	t.Run("按状态过滤", func(t *testing.T) {
		bookings, total, err := service.ListBookings(ctx, &query.Query{
			Filter: map[string]interface{}{"status_id": int64(models.BookingStatusPending)},
		})
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, int64(2), total)
	})

	t.Run("分页只影响列表不影响总数", func(t *testing.T) {
		bookings, total, err := service.ListBookings(ctx, &query.Query{
			Take: utils.IntPtr(1),
		})
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, int64(3), total)
	})
}

func TestFindBooking(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	booking := createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))

	t.Run("按预订号过滤命中", func(t *testing.T) {
		got, err := service.FindBooking(ctx, &query.Query{
			Filter: map[string]interface{}{"booking_no": booking.BookingNo},
		})
		require.NoError(t, err)
		assert.Equal(t, booking.ID, got.ID)
	})

	t.Run("无匹配记录", func(t *testing.T) {
		_, err := service.FindBooking(ctx, &query.Query{
			Filter: map[string]interface{}{"booking_no": "BK99999999999999999999"},
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrBookingNotFound.Code, appErr.Code)
	})
}

func TestListByCustomer(t *testing.T) {
	db := setupTestDB(t)
	service := setupTestBookingService(db)
	room, customer, staff := createTestData(t, db)
	ctx := context.Background()

	createTestBooking(t, db, room, customer, staff,
		models.BookingStatusPending,
		time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))
	createTestBooking(t, db, room, customer, staff,
		models.BookingStatusConfirmed,
		time.Now().AddDate(0, 0, 2), time.Now().AddDate(0, 0, 4))

	t.Run("返回客户的全部预订", func(t *testing.T) {
		bookings, err := service.ListByCustomer(ctx, customer.ID)
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
		for _, b := range bookings {
			assert.Equal(t, customer.ID, b.CustomerID)
			assert.NotNil(t, b.Status)
		}
	})

	t.Run("客户不存在", func(t *testing.T) {
		_, err := service.ListByCustomer(ctx, 99999)
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrCustomerNotFound.Code, appErr.Code)
	})
}
