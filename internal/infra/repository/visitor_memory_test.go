package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	domain "github.com/BruksfildServices01/recepcao-visitantes/internal/domain/visitor"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

type VisitorMemorySuite struct {
	suite.Suite
	repo *VisitorMemoryRepository
	ctx  context.Context
	base time.Time
}

func TestVisitorMemorySuite(t *testing.T) {
	suite.Run(t, new(VisitorMemorySuite))
}

func (s *VisitorMemorySuite) SetupTest() {
	s.repo = NewVisitorMemoryRepository()
	s.ctx = context.Background()
	s.base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func (s *VisitorMemorySuite) newVisitor(name, cpf, room string, checkIn time.Time) *models.Visitor {
	v, err := domain.NewVisitor(domain.NewVisitorInput{
		Name:        name,
		CPF:         cpf,
		SalaDestino: room,
	}, checkIn)
	s.Require().NoError(err)
	return v
}

func (s *VisitorMemorySuite) mustCreate(name, cpf, room string, checkIn time.Time) *models.Visitor {
	v := s.newVisitor(name, cpf, room, checkIn)
	s.Require().NoError(s.repo.Create(s.ctx, v))
	return v
}

// --------------------------------------------------
// Capacidade
// --------------------------------------------------

func (s *VisitorMemorySuite) TestRoomCapacityEnforced() {
	s.mustCreate("A", "1111111111", "Sala 1", s.base)
	s.mustCreate("B", "2222222222", "Sala 1", s.base)
	s.mustCreate("C", "3333333333", "Sala 1", s.base)

	fourth := s.newVisitor("D", "4444444444", "Sala 1", s.base)
	err := s.repo.Create(s.ctx, fourth)
	s.Require().Error(err)
	s.True(httperr.IsBusiness(err, "room_full"))

	// registro rejeitado não pode ter sido criado
	_, err = s.repo.GetByID(s.ctx, fourth.ID)
	s.True(httperr.IsBusiness(err, "visitor_not_found"))

	count, err := s.repo.ActiveCount(s.ctx, "Sala 1")
	s.Require().NoError(err)
	s.EqualValues(domain.RoomCapacity, count)
}

func (s *VisitorMemorySuite) TestCheckoutFreesRoomSlot() {
	a := s.mustCreate("A", "1111111111", "Sala 1", s.base)
	s.mustCreate("B", "2222222222", "Sala 1", s.base)
	s.mustCreate("C", "3333333333", "Sala 1", s.base)

	_, err := s.repo.CheckOut(s.ctx, a.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Create(s.ctx, s.newVisitor("D", "4444444444", "Sala 1", s.base.Add(time.Hour))))
}

func (s *VisitorMemorySuite) TestConcurrentRegistersRespectCap() {
	s.mustCreate("A", "1111111111", "Sala 2", s.base)
	s.mustCreate("B", "2222222222", "Sala 2", s.base)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := s.newVisitor("X", fmt.Sprintf("90000000%02d", i), "Sala 2", s.base)
			errs[i] = s.repo.Create(s.ctx, v)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		s.True(httperr.IsBusiness(err, "room_full"))
	}
	s.Equal(1, successes, "exatamente uma criação deve caber na vaga restante")

	count, err := s.repo.ActiveCount(s.ctx, "Sala 2")
	s.Require().NoError(err)
	s.EqualValues(domain.RoomCapacity, count)
}

// --------------------------------------------------
// Check-in por revisita
// --------------------------------------------------

func (s *VisitorMemorySuite) TestCheckInCloneCreatesNewRecord() {
	orig := s.mustCreate("Ana", "1234567890123", "Sala 1", s.base)

	_, err := s.repo.CheckOut(s.ctx, orig.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	revisit := s.base.Add(24 * time.Hour)
	clone, err := s.repo.CheckInClone(s.ctx, orig.ID, revisit)
	s.Require().NoError(err)

	s.NotEqual(orig.ID, clone.ID)
	s.Equal(orig.CPF, clone.CPF)
	s.Equal(orig.SalaDestino, clone.SalaDestino)
	s.Equal(revisit, clone.CheckIn)
	s.Nil(clone.CheckOut)

	// o registro antigo permanece intocado
	old, err := s.repo.GetByID(s.ctx, orig.ID)
	s.Require().NoError(err)
	s.Require().NotNil(old.CheckOut)
	s.Equal(s.base.Add(time.Hour), *old.CheckOut)
}

func (s *VisitorMemorySuite) TestCheckInRejectsDuplicateActiveCPF() {
	first := s.mustCreate("Ana", "1234567890123", "Sala 1", s.base)
	_, err := s.repo.CheckOut(s.ctx, first.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	// mesma pessoa, registro mais novo, ainda ativo
	second, err := s.repo.CheckInClone(s.ctx, first.ID, s.base.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Nil(second.CheckOut)

	// check-in a partir de qualquer registro do CPF deve falhar
	_, err = s.repo.CheckInClone(s.ctx, first.ID, s.base.Add(3*time.Hour))
	s.True(httperr.IsBusiness(err, "already_active"))
}

func (s *VisitorMemorySuite) TestCheckInUnknownID() {
	_, err := s.repo.CheckInClone(s.ctx, "nao-existe", s.base)
	s.True(httperr.IsBusiness(err, "visitor_not_found"))
}

func (s *VisitorMemorySuite) TestCheckInRespectsRoomCap() {
	old := s.mustCreate("Ana", "1234567890123", "Sala 3", s.base)
	_, err := s.repo.CheckOut(s.ctx, old.ID, s.base.Add(time.Minute))
	s.Require().NoError(err)

	s.mustCreate("B", "2222222222", "Sala 3", s.base)
	s.mustCreate("C", "3333333333", "Sala 3", s.base)
	s.mustCreate("D", "4444444444", "Sala 3", s.base)

	_, err = s.repo.CheckInClone(s.ctx, old.ID, s.base.Add(time.Hour))
	s.True(httperr.IsBusiness(err, "room_full"))
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

func (s *VisitorMemorySuite) TestCheckOutIsImmutable() {
	v := s.mustCreate("Ana", "1234567890123", "Sala 1", s.base)

	first := s.base.Add(time.Hour)
	out, err := s.repo.CheckOut(s.ctx, v.ID, first)
	s.Require().NoError(err)
	s.Require().NotNil(out.CheckOut)
	s.Equal(first, *out.CheckOut)

	_, err = s.repo.CheckOut(s.ctx, v.ID, s.base.Add(2*time.Hour))
	s.True(httperr.IsBusiness(err, "already_checked_out"))

	// o timestamp original não muda
	got, err := s.repo.GetByID(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(first, *got.CheckOut)
}

func (s *VisitorMemorySuite) TestCheckOutUnknownID() {
	_, err := s.repo.CheckOut(s.ctx, "nao-existe", s.base)
	s.True(httperr.IsBusiness(err, "visitor_not_found"))
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (s *VisitorMemorySuite) TestDeleteProtectsActiveVisit() {
	v := s.mustCreate("Ana", "1234567890123", "Sala 1", s.base)

	_, err := s.repo.Delete(s.ctx, v.ID)
	s.True(httperr.IsBusiness(err, "visitor_active"))

	_, err = s.repo.CheckOut(s.ctx, v.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(v.ID, deleted.ID)
	s.Equal("Ana", deleted.Name)

	_, err = s.repo.GetByID(s.ctx, v.ID)
	s.True(httperr.IsBusiness(err, "visitor_not_found"))
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (s *VisitorMemorySuite) TestListOrdersByCheckInDesc() {
	a := s.mustCreate("A", "1111111111", "Sala 1", s.base)
	b := s.mustCreate("B", "2222222222", "Sala 2", s.base.Add(time.Hour))
	c := s.mustCreate("C", "3333333333", "Sala 3", s.base.Add(2*time.Hour))

	all, err := s.repo.List(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(c.ID, all[0].ID)
	s.Equal(b.ID, all[1].ID)
	s.Equal(a.ID, all[2].ID)

	_, err = s.repo.CheckOut(s.ctx, b.ID, s.base.Add(3*time.Hour))
	s.Require().NoError(err)

	active, err := s.repo.List(s.ctx, true)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	for _, v := range active {
		s.Nil(v.CheckOut)
	}
}

func (s *VisitorMemorySuite) TestSearchReturnsLatestPerCPF() {
	old := s.mustCreate("Ana", "1234567890123", "Sala 1", s.base)
	_, err := s.repo.CheckOut(s.ctx, old.ID, s.base.Add(time.Minute))
	s.Require().NoError(err)

	latest, err := s.repo.CheckInClone(s.ctx, old.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	s.mustCreate("Bruno", "9876543210", "Sala 2", s.base)

	results, err := s.repo.SearchByCPF(s.ctx, "123456789")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(latest.ID, results[0].ID, "deve vir só o registro mais recente do CPF")

	all, err := s.repo.SearchByCPF(s.ctx, "123")
	s.Require().NoError(err)
	s.Len(all, 1)

	none, err := s.repo.SearchByCPF(s.ctx, "000000")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *VisitorMemorySuite) TestActiveCountByRoom() {
	s.mustCreate("A", "1111111111", "Sala 1", s.base)
	s.mustCreate("B", "2222222222", "Sala 1", s.base)
	c := s.mustCreate("C", "3333333333", "Sala 4", s.base)

	_, err := s.repo.CheckOut(s.ctx, c.ID, s.base.Add(time.Hour))
	s.Require().NoError(err)

	counts, err := s.repo.ActiveCountByRoom(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, counts["Sala 1"])
	s.EqualValues(0, counts["Sala 4"])
}
