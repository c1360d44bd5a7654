package payement

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"

	"github.com/gin-gonic/gin"
	rzputils "github.com/razorpay/razorpay-go/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// signPayload reproduit la signature du gateway : HMAC-SHA256 hex du
// payload `order_id|payment_id`.
func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	const secret = "gateway-secret"
	params := map[string]interface{}{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
	}

	valid := signPayload("order_ABC123", "pay_XYZ789", secret)
	if !rzputils.VerifyPaymentSignature(params, valid, secret) {
		t.Error("a correctly signed payload should verify")
	}

	tests := []struct {
		name      string
		signature string
		secret    string
	}{
		{"tampered signature", valid[:len(valid)-2] + "00", secret},
		{"empty signature", "", secret},
		{"wrong secret", valid, "other-secret"},
		{"signature for other payment", signPayload("order_ABC123", "pay_OTHER", secret), secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rzputils.VerifyPaymentSignature(params, tt.signature, tt.secret) {
				t.Error("verification should fail")
			}
		})
	}
}

func TestAmountInPaise(t *testing.T) {
	tests := []struct {
		total float64
		want  int64
	}{
		{0, 0},
		{100, 10000},
		{0.29, 29},
		{499.99, 49999},
		{1234.56, 123456},
	}
	for _, tt := range tests {
		if got := amountInPaise(tt.total); got != tt.want {
			t.Errorf("amountInPaise(%v) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func postVerifyPayment(router *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay/verify-payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerifyPaymentUnconfiguredGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := keySecret
	keySecret = ""
	defer func() { keySecret = prev }()

	router := gin.New()
	router.POST("/api/razorpay/verify-payment", VerifyPayment)

	// Un HMAC calculé avec la clé vide ne doit jamais valider la callback.
	w := postVerifyPayment(router, map[string]string{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
		"razorpay_signature":  signPayload("order_ABC123", "pay_XYZ789", ""),
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "Payment gateway not configured") {
		t.Errorf("body = %s, want gateway-not-configured message", w.Body.String())
	}
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := keySecret
	keySecret = "gateway-secret"
	defer func() { keySecret = prev }()

	router := gin.New()
	router.POST("/api/razorpay/verify-payment", VerifyPayment)

	w := postVerifyPayment(router, map[string]string{
		"razorpay_order_id":   "order_ABC123",
		"razorpay_payment_id": "pay_XYZ789",
		"razorpay_signature":  signPayload("order_ABC123", "pay_OTHER", "gateway-secret"),
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "invalid_signature") {
		t.Errorf("body = %s, want invalid_signature", w.Body.String())
	}
}

func TestVerifyPaymentReplayedCallbackStaysPaid(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejouer une callback valide reste idempotent", func(mt *mtest.T) {
		gin.SetMode(gin.TestMode)
		prevSecret, prevDB := keySecret, database.Mongo
		keySecret = "gateway-secret"
		database.Mongo = mt.DB
		defer func() { keySecret, database.Mongo = prevSecret, prevDB }()

		router := gin.New()
		router.POST("/api/razorpay/verify-payment", VerifyPayment)

		paidOrder := bson.D{
			{Key: "_id", Value: "o1"},
			{Key: "user_id", Value: "u1"},
			{Key: "order_id", Value: "20250314150926abc123"},
			{Key: "razorpay_order_id", Value: "order_ABC123"},
			{Key: "payment_status", Value: models.PaymentPaid},
			{Key: "order_status", Value: models.OrderProcessing},
			{Key: "total_amount", Value: 499.99},
		}
		// Deux callbacks, deux findAndModify : le second $set vers Paid est
		// un no-op et doit réussir de la même façon.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: paidOrder}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: paidOrder}),
		)

		payload := map[string]string{
			"razorpay_order_id":   "order_ABC123",
			"razorpay_payment_id": "pay_XYZ789",
			"razorpay_signature":  signPayload("order_ABC123", "pay_XYZ789", "gateway-secret"),
		}
		for i := 0; i < 2; i++ {
			w := postVerifyPayment(router, payload)
			if w.Code != http.StatusOK {
				mt.Fatalf("callback %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), `"status":"ok"`) {
				mt.Errorf("callback %d: body = %s, want status ok", i+1, w.Body.String())
			}
		}
	})
}
