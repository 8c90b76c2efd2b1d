package db_test

import (
	"context"
	"database/sql"
	"errors"
	"landledger/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Parcel struct {
	ID    uint `gorm:"primaryKey"`
	Owner string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"parcels\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Parcel{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateRecord", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "parcels" \("owner"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("0x1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

				mock.ExpectCommit()
			})

			It("should insert the record", func() {
				record := Parcel{Owner: "0x1"}
				err := testDB.CreateRecord(context.Background(), &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "parcels".*$`).
					WithArgs("0x1").
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				err := testDB.CreateRecord(context.Background(), &Parcel{Owner: "0x1"})
				Expect(err).To(MatchError(ContainSubstring("insert record")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE owner = \$1 ORDER BY "parcels"\."id" LIMIT \$2.*`).
					WithArgs("0x1", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}).
						AddRow(1, "0x1"))
			})

			It("should return the correct record", func() {
				var result Parcel
				err := testDB.GetOneBy(context.Background(), "owner", "0x1", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Owner).To(Equal("0x1"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE owner = \$1 ORDER BY "parcels"\."id" LIMIT \$2.*`).
					WithArgs("0xghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Parcel
				err := testDB.GetOneBy(context.Background(), "owner", "0xghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE owner = \$1.*`).
					WithArgs("0x1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}).
						AddRow(1, "0x1").
						AddRow(2, "0x1"))
			})

			It("should return all matching records", func() {
				var results []Parcel
				err := testDB.GetAllBy(context.Background(), "owner", "0x1", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE owner.*`).
					WithArgs("0xbad").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Parcel
				err := testDB.GetAllBy(context.Background(), "owner", "0xbad", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllWhere", func() {
		When("records match the condition", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE id IN \(\$1,\$2\).*`).
					WithArgs(1, 2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "owner"}).
						AddRow(1, "0x1").
						AddRow(2, "0x2"))
			})

			It("should return the matching records", func() {
				var results []Parcel
				err := testDB.GetAllWhere(context.Background(), &results, "id IN ?", []int{1, 2})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "parcels" WHERE id IN.*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Parcel
				err := testDB.GetAllWhere(context.Background(), &results, "id IN ?", []int{1, 2})
				Expect(err).To(MatchError(ContainSubstring("getting records where")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateColumns", func() {
		When("rows are updated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "parcels" SET "owner"=\$1 WHERE id = \$2$`).
					WithArgs("0x2", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should return the affected row count", func() {
				rows, err := testDB.UpdateColumns(context.Background(), &Parcel{},
					map[string]any{"owner": "0x2"}, "id = ?", 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no rows match", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "parcels" SET "owner"=\$1 WHERE id = \$2$`).
					WithArgs("0x2", 99).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return zero affected rows", func() {
				rows, err := testDB.UpdateColumns(context.Background(), &Parcel{},
					map[string]any{"owner": "0x2"}, "id = ?", 99)
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "parcels".*$`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				_, err := testDB.UpdateColumns(context.Background(), &Parcel{},
					map[string]any{"owner": "0x2"}, "id = ?", 1)
				Expect(err).To(MatchError(ContainSubstring("updating records where")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "parcels" WHERE id = \$1$`).
				WithArgs(1).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete the matching records", func() {
			err := testDB.DeleteWhere(context.Background(), &Parcel{}, "id = ?", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Transaction", func() {
		When("the callback succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "parcels" \("owner"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("0x1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should commit the transaction", func() {
				err := testDB.Transaction(context.Background(), func(tx db.Store) error {
					return tx.CreateRecord(context.Background(), &Parcel{Owner: "0x1"})
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the callback fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				txErr := errors.New("tx error")
				err := testDB.Transaction(context.Background(), func(tx db.Store) error {
					return txErr
				})
				Expect(err).To(MatchError(txErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
