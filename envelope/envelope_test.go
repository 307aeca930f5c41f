package envelope_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sabouaram/pogoclient/envelope"
)

var _ = Describe("RequestEnvelope", func() {
	It("round-trips through Marshal then UnmarshalRequestEnvelope", func() {
		orig := RequestEnvelope{
			StatusCode: 2,
			RequestID:  123456789,
			Requests: []Subrequest{
				{RequestType: 106, RequestMessage: []byte{0x01, 0x02}},
				{RequestType: 2, RequestMessage: nil},
			},
			AuthInfo: &AuthInfo{
				Provider: "ptc",
				Token:    AuthToken{Contents: "ABC", Unknown2: 59},
			},
			PlatformRequests: []PlatformRequest{
				{Type: PlatformTypeSendEncryptedSignature, Request: []byte("encrypted")},
			},
			Latitude:               47.5,
			Longitude:              19.05,
			Altitude:               100,
			MsSinceLastLocationfix: 42,
		}

		raw := orig.Marshal()
		got, err := UnmarshalRequestEnvelope(raw)
		Expect(err).ToNot(HaveOccurred())

		Expect(got.StatusCode).To(Equal(orig.StatusCode))
		Expect(got.RequestID).To(Equal(orig.RequestID))
		Expect(got.Requests).To(HaveLen(2))
		Expect(got.Requests[0].RequestType).To(Equal(orig.Requests[0].RequestType))
		Expect(got.Requests[0].RequestMessage).To(Equal(orig.Requests[0].RequestMessage))
		Expect(got.AuthInfo).ToNot(BeNil())
		Expect(got.AuthInfo.Token.Contents).To(Equal(orig.AuthInfo.Token.Contents))
		Expect(got.AuthInfo.Token.Unknown2).To(Equal(orig.AuthInfo.Token.Unknown2))
		Expect(got.PlatformRequests).To(HaveLen(1))
		Expect(got.Latitude).To(Equal(orig.Latitude))
		Expect(got.Longitude).To(Equal(orig.Longitude))
		Expect(got.MsSinceLastLocationfix).To(Equal(orig.MsSinceLastLocationfix))
	})
})

var _ = Describe("ResponseEnvelope", func() {
	It("round-trips through Marshal then UnmarshalResponseEnvelope", func() {
		orig := ResponseEnvelope{
			StatusCode: 1,
			RequestID:  9,
			Returns:    [][]byte{{0xAA}, {0xBB, 0xCC}},
			AuthTicket: &AuthTicket{ExpireTimestampMs: 1000, Start: []byte("s"), End: []byte("e")},
			PlatformReturns: []PlatformReturn{
				{Type: PlatformTypeEcho8, Response: []byte("echo")},
			},
		}

		raw := orig.Marshal()
		got, err := UnmarshalResponseEnvelope(raw)
		Expect(err).ToNot(HaveOccurred())

		Expect(got.StatusCode).To(Equal(orig.StatusCode))
		Expect(got.RequestID).To(Equal(orig.RequestID))
		Expect(got.Returns).To(Equal(orig.Returns))
		Expect(got.AuthTicket).ToNot(BeNil())
		Expect(got.AuthTicket.ExpireTimestampMs).To(Equal(orig.AuthTicket.ExpireTimestampMs))
		Expect(got.PlatformReturns).To(HaveLen(1))
		Expect(got.PlatformReturns[0].Response).To(Equal(orig.PlatformReturns[0].Response))
	})
})

var _ = Describe("SignalLog", func() {
	It("round-trips through Marshal then UnmarshalSignalLog", func() {
		orig := SignalLog{
			TimestampMsSinceStart: 5000,
			EpochTimestampMs:      1690000000000,
			LocationUpdates: []LocationUpdate{
				{Timestamp: 4000, Name: "fused", Latitude: 47.5, Longitude: 19.05, DeviceCourse: 12.5, DeviceSpeed: 3.2},
			},
			SensorUpdates: []SensorUpdate{
				{Timestamp: 2000, MagneticFieldAccuracy: -1},
			},
			DeviceInfo:    DeviceInfo{DeviceID: "abc123"},
			IosDeviceInfo: IosDeviceInfo{Bool5: true},
			LocationHash1: -2,
			LocationHash2: 1,
			RequestHash:   []int64{42, -1},
			SessionHash:   []byte("0123456789abcdef"),
			Status:        3,
			VersionHash:   FixedVersionHash,
		}

		raw := orig.Marshal()
		got, err := UnmarshalSignalLog(raw)
		Expect(err).ToNot(HaveOccurred())

		Expect(got.TimestampMsSinceStart).To(Equal(orig.TimestampMsSinceStart))
		Expect(got.EpochTimestampMs).To(Equal(orig.EpochTimestampMs))
		Expect(got.LocationUpdates).To(HaveLen(1))
		Expect(got.LocationUpdates[0].Latitude).To(Equal(orig.LocationUpdates[0].Latitude))
		Expect(got.SensorUpdates).To(HaveLen(1))
		Expect(got.DeviceInfo.DeviceID).To(Equal(orig.DeviceInfo.DeviceID))
		Expect(got.IosDeviceInfo.Bool5).To(BeTrue())
		Expect(got.LocationHash1).To(Equal(orig.LocationHash1))
		Expect(got.RequestHash).To(Equal(orig.RequestHash))
		Expect(got.SessionHash).To(Equal(orig.SessionHash))
		Expect(got.VersionHash).To(Equal(orig.VersionHash))
	})
})
