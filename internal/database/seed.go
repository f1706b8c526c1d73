package database

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tonimnim/Komiut-sub007/internal/ledger"
)

func SeedWallets(db *gorm.DB) error {
	wallets := []ledger.Wallet{
		{
			ID:        "w1",
			AccountID: "acct_1",
			Balance:   decimal.NewFromInt(1500),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "w2",
			AccountID: "acct_2",
			Balance:   decimal.NewFromInt(250),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "w3",
			AccountID: "acct_3",
			Balance:   decimal.Zero,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	for _, wallet := range wallets {
		result := db.Where(ledger.Wallet{ID: wallet.ID}).FirstOrCreate(&wallet)
		if result.Error != nil {
			return result.Error
		}
	}

	log.Println("✅ Wallets seeded successfully")
	return nil
}
