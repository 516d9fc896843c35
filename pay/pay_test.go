package pay

import "testing"

func TestVerifySignatureRoundTrip(t *testing.T) {
	body := []byte(`{"refId":"BK-001","gatewayRef":"gw_123"}`)
	sig := SignPayload(body)
	if !VerifySignature(body, sig) {
		t.Fatal("signature should verify against its own payload")
	}
}

func TestVerifySignatureRejectsTamper(t *testing.T) {
	body := []byte(`{"refId":"BK-001","gatewayRef":"gw_123"}`)
	sig := SignPayload(body)

	tampered := []byte(`{"refId":"BK-002","gatewayRef":"gw_123"}`)
	if VerifySignature(tampered, sig) {
		t.Error("tampered payload should not verify")
	}
	if VerifySignature(body, sig+"00") {
		t.Error("altered signature should not verify")
	}
	if VerifySignature(body, "") {
		t.Error("empty signature should not verify")
	}
}
