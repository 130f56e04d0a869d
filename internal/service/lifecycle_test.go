package service_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"

	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/service"
)

var _ = Describe("Lifecycle", func() {
	var now time.Time

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	})

	DescribeTable("transition table",
		func(from, to model.AssessmentStatus, allowed bool) {
			Expect(service.CanTransition(from, to)).To(Equal(allowed))
		},
		Entry("draft to active", model.StatusDraft, model.StatusActive, true),
		Entry("draft to rejected", model.StatusDraft, model.StatusRejected, true),
		Entry("draft to expired", model.StatusDraft, model.StatusExpired, true),
		Entry("draft to completed", model.StatusDraft, model.StatusCompleted, false),
		Entry("active to completed", model.StatusActive, model.StatusCompleted, true),
		Entry("active to expired", model.StatusActive, model.StatusExpired, true),
		Entry("active to rejected", model.StatusActive, model.StatusRejected, false),
		Entry("completed to active", model.StatusCompleted, model.StatusActive, false),
		Entry("rejected to active", model.StatusRejected, model.StatusActive, false),
		Entry("expired to active", model.StatusExpired, model.StatusActive, false),
	)

	It("treats completed, rejected and expired as terminal", func() {
		Expect(service.IsTerminal(model.StatusCompleted)).To(BeTrue())
		Expect(service.IsTerminal(model.StatusRejected)).To(BeTrue())
		Expect(service.IsTerminal(model.StatusExpired)).To(BeTrue())
		Expect(service.IsTerminal(model.StatusDraft)).To(BeFalse())
		Expect(service.IsTerminal(model.StatusActive)).To(BeFalse())
	})

	Describe("AssignCandidate", func() {
		It("activates an eligible draft", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusDraft}
			a.Eligibility = datatypes.NewJSONType(model.EligibilityReport{Eligible: true})

			Expect(service.AssignCandidate(a, 9, now)).To(Succeed())
			Expect(a.Status).To(Equal(model.StatusActive))
			Expect(*a.CandidateID).To(Equal(uint(9)))
			Expect(*a.StartedAt).To(Equal(now))
		})

		It("refuses a draft without a successful eligibility check", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusDraft}
			Expect(service.AssignCandidate(a, 9, now)).To(MatchError(service.ErrInvalidStateTransition))
			Expect(a.Status).To(Equal(model.StatusDraft))
			Expect(a.CandidateID).To(BeNil())
		})

		It("refuses an assessment that already started", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusActive}
			a.Eligibility = datatypes.NewJSONType(model.EligibilityReport{Eligible: true})
			Expect(service.AssignCandidate(a, 9, now)).To(MatchError(service.ErrInvalidStateTransition))
		})
	})

	Describe("Finalize", func() {
		It("requires every question to be answered", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusActive}
			err := service.Finalize(a, 3, 2, now)
			Expect(err).To(MatchError(service.ErrInvalidStateTransition))
			Expect(err.Error()).To(ContainSubstring("2/3 completed"))
			Expect(a.Status).To(Equal(model.StatusActive))
			Expect(a.CompletedAt).To(BeNil())
		})

		It("completes an active assessment", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusActive}
			Expect(service.Finalize(a, 3, 3, now)).To(Succeed())
			Expect(a.Status).To(Equal(model.StatusCompleted))
			Expect(*a.CompletedAt).To(Equal(now))
		})

		It("refuses a draft", func() {
			a := &model.Assessment{ID: 1, Status: model.StatusDraft}
			Expect(service.Finalize(a, 0, 0, now)).To(MatchError(service.ErrInvalidStateTransition))
		})
	})

	Describe("Reject", func() {
		It("only rejects drafts", func() {
			Expect(service.Reject(&model.Assessment{Status: model.StatusDraft})).To(Succeed())
			Expect(service.Reject(&model.Assessment{Status: model.StatusActive})).To(MatchError(service.ErrInvalidStateTransition))
		})
	})

	Describe("Expire", func() {
		It("expires an overdue draft or active assessment", func() {
			past := now.Add(-time.Minute)
			draft := &model.Assessment{Status: model.StatusDraft, ExpiresAt: &past}
			active := &model.Assessment{Status: model.StatusActive, ExpiresAt: &past}

			Expect(service.Expire(draft, now)).To(BeTrue())
			Expect(draft.Status).To(Equal(model.StatusExpired))
			Expect(service.Expire(active, now)).To(BeTrue())
			Expect(active.Status).To(Equal(model.StatusExpired))
		})

		It("treats the deadline instant as expired", func() {
			a := &model.Assessment{Status: model.StatusDraft, ExpiresAt: &now}
			Expect(service.Expire(a, now)).To(BeTrue())
		})

		It("leaves terminal, undated and future assessments alone", func() {
			past := now.Add(-time.Minute)
			future := now.Add(time.Minute)
			completed := &model.Assessment{Status: model.StatusCompleted, ExpiresAt: &past}

			Expect(service.Expire(completed, now)).To(BeFalse())
			Expect(completed.Status).To(Equal(model.StatusCompleted))
			Expect(service.Expire(&model.Assessment{Status: model.StatusDraft}, now)).To(BeFalse())
			Expect(service.Expire(&model.Assessment{Status: model.StatusDraft, ExpiresAt: &future}, now)).To(BeFalse())
		})
	})
})
