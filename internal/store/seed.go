package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// Seed is the first-run dataset. Zero-value fields fall back to the built-in
// defaults the society's books started with.
type Seed struct {
	Users   []models.User   `yaml:"users"`
	Members []models.Member `yaml:"members"`
}

// DefaultSeed returns the built-in first-run dataset.
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{ID: "1", Username: "Admin", Name: "অ্যাডমিন", Role: models.RoleAdmin, Password: "Samiti9999"},
			{ID: "2", Username: "Roni", Name: "আবু সুফিয়ান রনি", Role: models.RoleUser, Password: "Samiti9999"},
			{ID: "3", Username: "Tohid", Name: "মেহেদী হাসান তৌহিদ", Role: models.RoleUser, Password: "Samiti9999"},
		},
		Members: []models.Member{
			{ID: "101", Name: "আব্দুল করিম", FatherName: "রহিম উল্লাহ", Phone: "01712345678", NID: "1234567890", Address: "স্বরুপনগর, চাপাইনবাবগঞ্জ", JoinDate: "2024-01-01", TotalSavings: 5500, TotalLoan: 6000},
			{ID: "102", Name: "রহিম উদ্দিন", FatherName: "জসিম উদ্দিন", Phone: "01822334455", NID: "0987654321", Address: "চাপাইনবাবগঞ্জ সদর", JoinDate: "2024-01-10", TotalSavings: 8200, TotalLoan: 0},
			{ID: "103", Name: "মোঃ জামান", FatherName: "করিম শেখ", Phone: "01911223344", NID: "1122334455", Address: "রামচন্দ্রপুর, চাপাইনবাবগঞ্জ", JoinDate: "2024-02-15", TotalSavings: 3000, TotalLoan: 4000},
			{ID: "104", Name: "নূর আলম", FatherName: "আব্দুস সাত্তার", Phone: "01700112233", NID: "5544332211", Address: "বারোঘরিয়া", JoinDate: "2024-03-01", TotalSavings: 12000, TotalLoan: 0},
			{ID: "105", Name: "সাইফুল ইসলাম", FatherName: "মজিবুর রহমান", Phone: "01512345678", NID: "9988776655", Address: "মহারাজপুর", JoinDate: "2024-03-05", TotalSavings: 4500, TotalLoan: 14000},
		},
	}
}

// Init seeds each collection that has never been written: users and members
// from the given seed, the transaction log as empty. Collections with prior
// data are left untouched, so calling Init again is a no-op.
func (s *Store) Init(seed Seed) error {
	defaults := DefaultSeed()
	if len(seed.Users) == 0 {
		seed.Users = defaults.Users
	}
	if len(seed.Members) == 0 {
		seed.Members = defaults.Members
	}

	return s.write(func(b *bolt.Bucket) error {
		if b.Get([]byte(KeyUsers)) == nil {
			if err := putList(b, KeyUsers, seed.Users); err != nil {
				return err
			}
		}
		if b.Get([]byte(KeyMembers)) == nil {
			if err := putList(b, KeyMembers, seed.Members); err != nil {
				return err
			}
		}
		if b.Get([]byte(KeyTransactions)) == nil {
			if err := putList(b, KeyTransactions, []models.Transaction{}); err != nil {
				return err
			}
		}
		return nil
	})
}
