package tracker

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/progression"
)

// AddContact records a new networking contact. Status, type and
// lastContactedAt are always New, Other and now, whatever the caller sent.
func (s *service) AddContact(ctx context.Context, in domain.NewContact) domain.Outcome {
	return s.mutate(ctx, OpAddContact, func(st *domain.State, out *domain.Outcome) []event.Event {
		contact := domain.Contact{
			ID:              s.newID(),
			Name:            in.Name,
			Company:         in.Company,
			Role:            in.Role,
			Status:          domain.ContactStatusNew,
			Type:            domain.ContactTypeOther,
			LastContactedAt: s.clock(),
			Notes:           in.Notes,
			Link:            in.Link,
		}
		if in.NextFollowUpAt != nil {
			t := *in.NextFollowUpAt
			contact.NextFollowUpAt = &t
		}

		st.Contacts = append(st.Contacts, contact)
		out.Changed = true
		out.EntityID = contact.ID

		events := s.award(ctx, st, out, domain.XPSourceContactAdded, progression.XPContactAdded)
		return append(events, s.evaluate(ctx, st, out)...)
	})
}

// UpdateContact merges a partial update into a contact. No XP is awarded.
func (s *service) UpdateContact(ctx context.Context, id string, update domain.ContactUpdate) domain.Outcome {
	return s.mutate(ctx, OpUpdateContact, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := contactIndex(st.Contacts, id)
		if idx == -1 {
			return nil
		}
		update.Apply(&st.Contacts[idx])
		out.Changed = true
		return nil
	})
}

// DeleteContact permanently removes a contact
func (s *service) DeleteContact(ctx context.Context, id string) domain.Outcome {
	return s.mutate(ctx, OpDeleteContact, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := contactIndex(st.Contacts, id)
		if idx == -1 {
			return nil
		}
		st.Contacts = append(st.Contacts[:idx], st.Contacts[idx+1:]...)
		out.Changed = true
		return nil
	})
}

// LogContactInteraction refreshes lastContactedAt and advances New to
// Contacted. Later statuses are left alone.
func (s *service) LogContactInteraction(ctx context.Context, id string) domain.Outcome {
	return s.mutate(ctx, OpLogInteraction, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := contactIndex(st.Contacts, id)
		if idx == -1 {
			return nil
		}

		c := &st.Contacts[idx]
		c.LastContactedAt = s.clock()
		if c.Status == domain.ContactStatusNew {
			c.Status = domain.ContactStatusContacted
		}
		out.Changed = true

		events := s.award(ctx, st, out, domain.XPSourceContactInteraction, progression.XPContactInteraction)
		return append(events, s.evaluate(ctx, st, out)...)
	})
}

func contactIndex(contacts []domain.Contact, id string) int {
	for i, c := range contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
