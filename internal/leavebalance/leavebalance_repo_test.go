package leavebalance_test

import (
	"context"
	"testing"

	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&leavetype.LeaveType{}, &leavebalance.LeaveBalance{}))
	require.NoError(t, db.Exec(`CREATE TABLE employees (id TEXT PRIMARY KEY, first_name TEXT, last_name TEXT)`).Error)
	return db
}

func TestLeaveBalanceRepository_CreateMissingAndIncrement(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := leavebalance.NewRepository(db)

	empID := uuid.New()
	lt := leavetype.LeaveType{ID: uuid.New(), Code: "ANNUAL", Name: "Annual Leave", MaxDaysPerYear: 14, IsActive: true}
	require.NoError(t, db.Create(&lt).Error)
	require.NoError(t, db.Exec(`INSERT INTO employees (id, first_name, last_name) VALUES (?, ?, ?)`, empID.String(), "Ayse", "Yilmaz").Error)

	row := func() leavebalance.LeaveBalance {
		return leavebalance.LeaveBalance{ID: uuid.New(), EmployeeID: empID, LeaveTypeID: lt.ID, Year: 2026, TotalDays: 14}
	}

	created, err := repo.CreateMissing(ctx, []leavebalance.LeaveBalance{row()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created)

	created, err = repo.CreateMissing(ctx, []leavebalance.LeaveBalance{row()})
	require.NoError(t, err)
	assert.Equal(t, int64(0), created)

	ok, err := repo.Increment(ctx, empID, lt.ID, 2026, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Increment(ctx, empID, lt.ID, 2025, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	b, err := repo.FindByKey(ctx, empID, lt.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 3, b.UsedDays)
	assert.Equal(t, 11, b.RemainingDays())

	views, err := repo.ListByEmployeeYear(ctx, empID, 2026)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "ANNUAL", views[0].LeaveTypeCode)
	assert.Equal(t, "Ayse Yilmaz", views[0].EmployeeName)
}

func seedBalance(t *testing.T, db *gorm.DB, total int) leavebalance.LeaveBalance {
	t.Helper()
	lt := leavetype.LeaveType{ID: uuid.New(), Code: "ANNUAL-" + uuid.NewString()[:8], Name: "Annual Leave", MaxDaysPerYear: total, IsActive: true}
	require.NoError(t, db.Create(&lt).Error)

	b := leavebalance.LeaveBalance{ID: uuid.New(), EmployeeID: uuid.New(), LeaveTypeID: lt.ID, Year: 2026, TotalDays: total}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func TestLeaveBalanceRepository_SetTotalKeepsConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := leavebalance.NewRepository(db)
	b := seedBalance(t, db, 14)

	// An admin reads the row, an HR approval books days, then the admin
	// writes the new entitlement.
	read, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, read.UsedDays)

	ok, err := repo.Increment(ctx, b.EmployeeID, b.LeaveTypeID, b.Year, 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.SetTotal(ctx, b.ID, 20)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.TotalDays)
	assert.Equal(t, 3, got.UsedDays)

	t.Run("total below used is not written", func(t *testing.T) {
		ok, err := repo.SetTotal(ctx, b.ID, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, got.TotalDays)
	})

	t.Run("unknown id", func(t *testing.T) {
		ok, err := repo.SetTotal(ctx, uuid.New(), 20)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLeaveBalanceRepository_DeleteUnused(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := leavebalance.NewRepository(db)

	t.Run("row booked after the read survives", func(t *testing.T) {
		b := seedBalance(t, db, 14)

		read, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, read.UsedDays)

		ok, err := repo.Increment(ctx, b.EmployeeID, b.LeaveTypeID, b.Year, 3)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.DeleteUnused(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.UsedDays)
	})

	t.Run("unused row is removed", func(t *testing.T) {
		b := seedBalance(t, db, 14)

		ok, err := repo.DeleteUnused(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
