package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
)

// Transactions returns the full append-only transaction log.
func (s *Store) Transactions() ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := s.read(func(b *bolt.Bucket) error {
		getList(b, KeyTransactions, &txs)
		return nil
	})
	return txs, err
}

// SaveTransactions replaces the transaction log wholesale.
func (s *Store) SaveTransactions(txs []models.Transaction) error {
	return s.write(func(b *bolt.Bucket) error {
		return putList(b, KeyTransactions, txs)
	})
}

// AddTransaction appends tx to the log and applies the balance-update rule to
// the matching member. Both writes happen in one database transaction: the
// log and the cached balances cannot diverge partway. When no member matches
// tx.MemberID the entry is still logged and the balance step is a no-op.
func (s *Store) AddTransaction(tx models.Transaction) error {
	return s.write(func(b *bolt.Bucket) error {
		txs := []models.Transaction{}
		getList(b, KeyTransactions, &txs)

		members := []models.Member{}
		getList(b, KeyMembers, &members)
		members, err := ledger.ApplyTransaction(members, tx)
		if err != nil {
			return err
		}

		if err := putList(b, KeyTransactions, append(txs, tx)); err != nil {
			return err
		}
		return putList(b, KeyMembers, members)
	})
}

// AddTransactions appends several transactions atomically, applying the
// balance-update rule per entry. Used by profit distribution so a partial
// crediting run can never be persisted.
func (s *Store) AddTransactions(batch []models.Transaction) error {
	return s.write(func(b *bolt.Bucket) error {
		txs := []models.Transaction{}
		getList(b, KeyTransactions, &txs)

		members := []models.Member{}
		getList(b, KeyMembers, &members)

		var err error
		for _, tx := range batch {
			if members, err = ledger.ApplyTransaction(members, tx); err != nil {
				return err
			}
			txs = append(txs, tx)
		}

		if err := putList(b, KeyTransactions, txs); err != nil {
			return err
		}
		return putList(b, KeyMembers, members)
	})
}
