package db_test

import (
	"context"
	"database/sql"
	"time"

	"scholarledger/internal/db"
	"scholarledger/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("PostgresDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
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
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"ledger_records\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateTable(&db.Record{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Get", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "ledger_records" WHERE key = \$1 ORDER BY "ledger_records"\."key" LIMIT \$2.*`).
					WithArgs(ledger.StateKey, 1).
					WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
						AddRow(ledger.StateKey, `{"blockNumber":7}`, time.Now()))
			})

			It("should return the stored value", func() {
				value, err := testDB.Get(ctx, ledger.StateKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(value)).To(Equal(`{"blockNumber":7}`))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "ledger_records" WHERE key = \$1.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrKeyNotFound", func() {
				_, err := testDB.Get(ctx, "ghost")
				Expect(err).To(MatchError(ledger.ErrKeyNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "ledger_records" WHERE key = \$1.*`).
					WithArgs("broken", 1).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				_, err := testDB.Get(ctx, "broken")
				Expect(err).To(MatchError(ContainSubstring("getting record by key")))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Put", func() {
		When("the upsert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectExec(`^INSERT INTO "ledger_records" .* ON CONFLICT \("key"\) DO UPDATE SET .*`).
					WithArgs(ledger.NFTKey, "[]", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			})

			It("should write the record", func() {
				Expect(testDB.Put(ctx, ledger.NFTKey, []byte("[]"))).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`^INSERT INTO "ledger_records" .*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				err := testDB.Put(ctx, ledger.NFTKey, []byte("[]"))
				Expect(err).To(MatchError(ContainSubstring("upsert record")))
			})
		})
	})
})

var _ = Describe("key-value backends", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	behaves := func(newBackend func() ledger.Backend) {
		var backend ledger.Backend

		BeforeEach(func() {
			backend = newBackend()
		})

		It("should report missing keys", func() {
			_, err := backend.Get(ctx, "missing")
			Expect(err).To(MatchError(ledger.ErrKeyNotFound))
		})

		It("should return what was put", func() {
			Expect(backend.Put(ctx, "k", []byte("v1"))).To(Succeed())
			Expect(backend.Put(ctx, "k", []byte("v2"))).To(Succeed())

			value, err := backend.Get(ctx, "k")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(value)).To(Equal("v2"))
		})

		It("should not alias the caller's buffer", func() {
			buf := []byte("original")
			Expect(backend.Put(ctx, "k", buf)).To(Succeed())
			buf[0] = 'X'

			value, err := backend.Get(ctx, "k")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(value)).To(Equal("original"))
		})
	}

	Describe("MemoryDB", func() {
		behaves(func() ledger.Backend { return db.NewMemoryDB() })
	})

	Describe("BadgerDB", func() {
		behaves(func() ledger.Backend {
			b, err := db.NewInMemoryBadgerDB()
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(b.Close)
			return b
		})
	})
})
