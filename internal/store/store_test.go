package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "somity.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSeed() Seed {
	return Seed{
		Users: []models.User{
			{ID: "1", Username: "Admin", Name: "Admin", Role: models.RoleAdmin, Password: "secret99"},
		},
		Members: []models.Member{
			{ID: "101", Name: "Karim", JoinDate: "2024-01-01", TotalSavings: 5500, TotalLoan: 6000},
			{ID: "102", Name: "Rahim", JoinDate: "2024-01-10", TotalSavings: 8200},
		},
	}
}

func TestInitSeedsOnce(t *testing.T) {
	s := newTestStore(t)

	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	users, err := s.Users()
	if err != nil {
		t.Fatalf("Users() error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	members, _ := s.Members()
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	txs, _ := s.Transactions()
	if len(txs) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txs))
	}
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := s.AddUser(models.User{ID: "2", Username: "Roni", Role: models.RoleUser}); err != nil {
		t.Fatalf("AddUser() error: %v", err)
	}
	before, _ := s.Users()

	// A second Init must not reseed or duplicate anything.
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("second Init() error: %v", err)
	}
	after, _ := s.Users()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("Init() reseeded: before %+v, after %+v", before, after)
	}
}

func TestInitDefaultSeed(t *testing.T) {
	s := newTestStore(t)

	if err := s.Init(Seed{}); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	users, _ := s.Users()
	members, _ := s.Members()
	if len(users) == 0 || len(members) == 0 {
		t.Fatalf("built-in seed not applied: %d users, %d members", len(users), len(members))
	}
	if users[0].Role != models.RoleAdmin {
		t.Errorf("first seeded user role = %s, want admin", users[0].Role)
	}
}

func TestAddTransactionUpdatesBalance(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	err := s.AddTransaction(models.Transaction{
		ID: "TXN-1", MemberID: "101", MemberName: "Karim",
		Date: "2025-06-01", Amount: 1000, Type: models.TxLoanCollection,
	})
	if err != nil {
		t.Fatalf("AddTransaction() error: %v", err)
	}

	m, err := s.GetMember("101")
	if err != nil {
		t.Fatalf("GetMember() error: %v", err)
	}
	if m.TotalLoan != 5000 {
		t.Errorf("totalLoan = %v, want 5000", m.TotalLoan)
	}
	if m.TotalSavings != 5500 {
		t.Errorf("totalSavings = %v, want unchanged 5500", m.TotalSavings)
	}

	txs, _ := s.Transactions()
	if len(txs) != 1 || txs[0].ID != "TXN-1" {
		t.Fatalf("transaction log = %+v, want the one appended entry", txs)
	}
}

func TestAddTransactionUnknownMemberStillLogged(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	// Society-level expense: no member, no balance effect, entry logged.
	err := s.AddTransaction(models.Transaction{
		ID: "TXN-2", MemberID: "", Date: "2025-06-01", Amount: 700, Type: models.TxExpense,
	})
	if err != nil {
		t.Fatalf("AddTransaction() error: %v", err)
	}

	txs, _ := s.Transactions()
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	members, _ := s.Members()
	for _, m := range members {
		if m.TotalSavings != 5500 && m.TotalSavings != 8200 {
			t.Errorf("member balance changed: %+v", m)
		}
	}
}

func TestAddTransactionUnknownTypeRejectedAtomically(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	err := s.AddTransaction(models.Transaction{
		ID: "TXN-3", MemberID: "101", Date: "2025-06-01", Amount: 10, Type: "mystery",
	})
	if !errors.Is(err, ledger.ErrUnknownTransactionType) {
		t.Fatalf("AddTransaction() error = %v, want ErrUnknownTransactionType", err)
	}

	// Nothing may have been persisted.
	txs, _ := s.Transactions()
	if len(txs) != 0 {
		t.Errorf("got %d transactions after rejected insert, want 0", len(txs))
	}
	m, _ := s.GetMember("101")
	if m.TotalSavings != 5500 || m.TotalLoan != 6000 {
		t.Errorf("balances changed after rejected insert: %+v", m)
	}
}

func TestAddTransactionsBatch(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	batch := []models.Transaction{
		{ID: "DIST-1", MemberID: "101", Date: "2025-12-31", Amount: 550, Type: models.TxSavings},
		{ID: "DIST-2", MemberID: "102", Date: "2025-12-31", Amount: 820, Type: models.TxSavings},
	}
	if err := s.AddTransactions(batch); err != nil {
		t.Fatalf("AddTransactions() error: %v", err)
	}

	m1, _ := s.GetMember("101")
	m2, _ := s.GetMember("102")
	if m1.TotalSavings != 6050 {
		t.Errorf("member 101 savings = %v, want 6050", m1.TotalSavings)
	}
	if m2.TotalSavings != 9020 {
		t.Errorf("member 102 savings = %v, want 9020", m2.TotalSavings)
	}
	txs, _ := s.Transactions()
	if len(txs) != 2 {
		t.Errorf("got %d transactions, want 2", len(txs))
	}
}

func TestCorruptDataDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)

	if err := s.PutRaw(KeyMembers, []byte("{not json")); err != nil {
		t.Fatalf("PutRaw() error: %v", err)
	}

	members, err := s.Members()
	if err != nil {
		t.Fatalf("Members() error: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("got %d members from corrupt entry, want 0", len(members))
	}
}

func TestMemberCRUD(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	id, err := s.NextMemberID()
	if err != nil {
		t.Fatalf("NextMemberID() error: %v", err)
	}
	if id != "103" {
		t.Errorf("NextMemberID() = %s, want 103 (100 + 2 members + 1)", id)
	}

	if err := s.AddMember(models.Member{ID: id, Name: "Zaman", JoinDate: "2025-01-01"}); err != nil {
		t.Fatalf("AddMember() error: %v", err)
	}

	m, err := s.GetMember("103")
	if err != nil {
		t.Fatalf("GetMember() error: %v", err)
	}
	m.Phone = "01711111111"
	if err := s.UpdateMember(m); err != nil {
		t.Fatalf("UpdateMember() error: %v", err)
	}
	got, _ := s.GetMember("103")
	if got.Phone != "01711111111" {
		t.Errorf("phone = %s, want updated", got.Phone)
	}

	if err := s.DeleteMember("103"); err != nil {
		t.Fatalf("DeleteMember() error: %v", err)
	}
	if _, err := s.GetMember("103"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMember() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteMember("103"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteMember() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMemberKeepsHistory(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	err := s.AddTransaction(models.Transaction{
		ID: "TXN-4", MemberID: "101", MemberName: "Karim",
		Date: "2025-06-01", Amount: 500, Type: models.TxSavings,
	})
	if err != nil {
		t.Fatalf("AddTransaction() error: %v", err)
	}
	if err := s.DeleteMember("101"); err != nil {
		t.Fatalf("DeleteMember() error: %v", err)
	}

	txs, _ := s.Transactions()
	if len(txs) != 1 || txs[0].MemberID != "101" || txs[0].MemberName != "Karim" {
		t.Errorf("orphaned transaction not retained: %+v", txs)
	}
}

func TestCurrentUserSlot(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	user, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser() error: %v", err)
	}
	if user != nil {
		t.Fatalf("CurrentUser() = %+v before login, want nil", user)
	}

	admin := models.User{ID: "1", Username: "Admin", Role: models.RoleAdmin, Password: "secret99"}
	if err := s.SetCurrentUser(&admin); err != nil {
		t.Fatalf("SetCurrentUser() error: %v", err)
	}
	user, _ = s.CurrentUser()
	if user == nil || user.ID != "1" {
		t.Fatalf("CurrentUser() = %+v, want admin", user)
	}

	if err := s.SetCurrentUser(nil); err != nil {
		t.Fatalf("SetCurrentUser(nil) error: %v", err)
	}
	user, _ = s.CurrentUser()
	if user != nil {
		t.Errorf("CurrentUser() = %+v after logout, want nil", user)
	}
}

func TestUpdateUserRefreshesSession(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	users, _ := s.Users()
	admin := users[0]
	if err := s.SetCurrentUser(&admin); err != nil {
		t.Fatalf("SetCurrentUser() error: %v", err)
	}

	admin.Password = "changed99"
	if err := s.UpdateUser(admin); err != nil {
		t.Fatalf("UpdateUser() error: %v", err)
	}

	current, _ := s.CurrentUser()
	if current == nil || current.Password != "changed99" {
		t.Errorf("session user not refreshed: %+v", current)
	}
}

func TestDeleteUserGuards(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	// Only one user seeded: deletion must be refused.
	if err := s.DeleteUser("1"); !errors.Is(err, ErrLastUser) {
		t.Fatalf("DeleteUser() error = %v, want ErrLastUser", err)
	}

	if err := s.AddUser(models.User{ID: "2", Username: "Roni", Role: models.RoleUser}); err != nil {
		t.Fatalf("AddUser() error: %v", err)
	}
	if err := s.DeleteUser("999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteUser(unknown) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteUser("2"); err != nil {
		t.Fatalf("DeleteUser() error: %v", err)
	}
	users, _ := s.Users()
	if len(users) != 1 {
		t.Errorf("got %d users, want 1", len(users))
	}
}

func TestFindUserByUsernameCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(testSeed()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	u, err := s.FindUserByUsername("admin")
	if err != nil {
		t.Fatalf("FindUserByUsername() error: %v", err)
	}
	if u.ID != "1" {
		t.Errorf("found user %+v, want id 1", u)
	}

	if _, err := s.FindUserByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindUserByUsername(unknown) error = %v, want ErrNotFound", err)
	}
}
