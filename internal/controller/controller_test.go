package controller_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lshigami/skillgate/internal/controller"
	"github.com/lshigami/skillgate/internal/dto"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/lshigami/skillgate/internal/service"
)

var _ = Describe("StatusFor", func() {
	DescribeTable("maps errors to status codes",
		func(err error, status int) {
			Expect(controller.StatusFor(err)).To(Equal(status))
		},
		Entry("validation", fmt.Errorf("%w: title", service.ErrValidation), http.StatusBadRequest),
		Entry("forbidden", service.ErrForbidden, http.StatusForbidden),
		Entry("not found", fmt.Errorf("assessment 1: %w", repository.ErrNotFound), http.StatusNotFound),
		Entry("invalid state", service.ErrInvalidStateTransition, http.StatusConflict),
		Entry("duplicate answer", service.ErrDuplicateAnswer, http.StatusConflict),
		Entry("no answers", service.ErrNoAnswers, http.StatusUnprocessableEntity),
		Entry("anything else", errors.New("boom"), http.StatusInternalServerError),
	)
})

var _ = Describe("helpers", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
	})

	serve := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("hides internal error details", func() {
		router.GET("/fail", func(c *gin.Context) {
			controller.WriteError(c, errors.New("dial tcp: refused"), "Failed to load")
		})
		w := serve("/fail")
		Expect(w.Code).To(Equal(http.StatusInternalServerError))

		var resp dto.ErrorResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Message).To(Equal("Failed to load"))
		Expect(resp.Details).To(BeEmpty())
	})

	It("includes details for client errors", func() {
		router.GET("/conflict", func(c *gin.Context) {
			controller.WriteError(c, service.ErrDuplicateAnswer, "Failed to submit answer")
		})
		w := serve("/conflict")
		Expect(w.Code).To(Equal(http.StatusConflict))

		var resp dto.ErrorResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Details).To(ConsistOf("question already answered"))
	})

	It("parses ids from path and query", func() {
		router.GET("/items/:id", func(c *gin.Context) {
			id, ok := controller.ParseIDParam(c, "id")
			if !ok {
				return
			}
			owner, ok := controller.ParseIDQuery(c, "owner_id")
			if !ok {
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": id, "owner": owner})
		})

		Expect(serve("/items/5?owner_id=2").Code).To(Equal(http.StatusOK))
		Expect(serve("/items/abc?owner_id=2").Code).To(Equal(http.StatusBadRequest))
		Expect(serve("/items/0?owner_id=2").Code).To(Equal(http.StatusBadRequest))
		Expect(serve("/items/5").Code).To(Equal(http.StatusBadRequest))
	})
})
