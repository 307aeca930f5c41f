/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package rpc

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/sabouaram/pogoclient/auth"
	"github.com/sabouaram/pogoclient/envelope"
	"github.com/sabouaram/pogoclient/hash"
	"github.com/sabouaram/pogoclient/requests"
	"github.com/sabouaram/pogoclient/signaldist"
)

// accuracyWeighted draws the request's GPS accuracy per the weighted table:
// six discrete values plus a seventh bucket that draws a uniform float
// between 65 and 200.
func accuracyWeighted() (value float64, isFloat bool) {
	type bucket struct {
		value   float64
		isFloat bool
	}
	picked := signaldist.WeightedPick([]signaldist.WeightedEntry[bucket]{
		{Value: bucket{5, false}, Weight: 43},
		{Value: bucket{10, false}, Weight: 30},
		{Value: bucket{30, false}, Weight: 5},
		{Value: bucket{50, false}, Weight: 4},
		{Value: bucket{65, false}, Weight: 10},
		{Value: bucket{200, false}, Weight: 1},
		{Value: bucket{0, true}, Weight: 7},
	})
	if picked.isFloat {
		return signaldist.UniformFloat(65, 200), true
	}
	return picked.value, false
}

// unknown2Weighted draws auth_info.token.unknown2 from the fixed set, with 59
// carrying half the probability mass and the other ten entries splitting the
// remainder evenly.
func unknown2Weighted() int32 {
	others := []int32{4, 19, 22, 26, 30, 44, 45, 50, 57, 58}
	entries := make([]signaldist.WeightedEntry[int32], 0, len(others)+1)
	for _, v := range others {
		entries = append(entries, signaldist.WeightedEntry[int32]{Value: v, Weight: 5})
	}
	entries = append(entries, signaldist.WeightedEntry[int32]{Value: 59, Weight: 50})
	return signaldist.WeightedPick(entries)
}

func verticalAccuracy(accuracy float64, isFloat bool) float64 {
	switch {
	case isFloat:
		return signaldist.TriangularFloat(35, 100, 65)
	case accuracy > 10:
		return signaldist.WeightedPick([]signaldist.WeightedEntry[float64]{
			{Value: 24, Weight: 1}, {Value: 32, Weight: 1},
			{Value: 48, Weight: 2}, {Value: 64, Weight: 2},
			{Value: 96, Weight: 1}, {Value: 128, Weight: 1},
		})
	default:
		return signaldist.WeightedPick([]signaldist.WeightedEntry[float64]{
			{Value: 3, Weight: 1}, {Value: 4, Weight: 1}, {Value: 6, Weight: 4},
			{Value: 8, Weight: 1}, {Value: 12, Weight: 1}, {Value: 24, Weight: 1},
		})
	}
}

func horizontalAccuracy(accuracy float64, isFloat bool) float64 {
	if !isFloat {
		return accuracy
	}
	return signaldist.WeightedPick([]signaldist.WeightedEntry[float64]{
		{Value: accuracy, Weight: 20},
		{Value: 65, Weight: 60},
		{Value: 200, Weight: 20},
	})
}

func magneticFieldAccuracy() int32 {
	return signaldist.WeightedPick([]signaldist.WeightedEntry[int32]{
		{Value: -1, Weight: 8}, {Value: 0, Weight: 2},
		{Value: 1, Weight: 42}, {Value: 2, Weight: 48},
	})
}

func platformEightFires(firstType int32) bool {
	var p float64
	switch firstType {
	case requests.TypeGetMapObjects, requests.TypeGetPlayer:
		p = 0.5
	case requests.TypeEncounter:
		p = 0.1
	default:
		p = 0.03
	}
	return rand.Float64() < p
}

// buildEnvelope implements the envelope-construction sequence.
func (e *Engine) buildEnvelope(ctx context.Context, subrequests []SubrequestSpec, pos Position) (envelope.RequestEnvelope, envelope.SignalLog, error) {
	req := envelope.RequestEnvelope{
		StatusCode: 2,
		RequestID:  e.state.NextRequestID(),
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
	}

	accuracy, accuracyIsFloat := accuracyWeighted()

	for _, sr := range subrequests {
		var body []byte
		if sr.Args != nil {
			if d, ok := requests.Lookup(sr.Type); ok {
				body = requests.Build(d.Request, sr.Args)
			}
		}
		req.Requests = append(req.Requests, envelope.Subrequest{RequestType: sr.Type, RequestMessage: body})
	}

	var ticketBytes []byte
	if e.authP.CheckTicket() {
		t := e.authP.GetTicket()
		req.AuthTicket = &envelope.AuthTicket{ExpireTimestampMs: t.ExpireMs, Start: t.Start, End: t.End}
		ticketBytes = req.AuthTicket.Marshal()
	} else {
		token, err := e.authP.GetAccessToken(ctx, false)
		if err != nil {
			return envelope.RequestEnvelope{}, envelope.SignalLog{}, err
		}
		info := &envelope.AuthInfo{
			Provider: providerName(e.authP),
			Token:    envelope.AuthToken{Contents: token, Unknown2: unknown2Weighted()},
		}
		req.AuthInfo = info
		ticketBytes = info.Marshal()
	}

	subrequestBytes := make([][]byte, 0, len(req.Requests))
	for _, r := range req.Requests {
		subrequestBytes = append(subrequestBytes, r.Marshal())
	}

	hashInputChan := make(chan hash.Hashes, 1)
	hashErrChan := make(chan error, 1)
	epochMs := time.Now().UnixMilli()
	go func() {
		h, err := e.hashCli.Hash(ctx, hash.Input{
			TimestampMs:  epochMs,
			Latitude:     pos.Latitude,
			Longitude:    pos.Longitude,
			Accuracy:     accuracy,
			AuthTicket:   ticketBytes,
			SessionHash:  e.state.SessionHash(),
			Subrequests:  subrequestBytes,
		})
		if err != nil {
			hashErrChan <- err
			return
		}
		hashInputChan <- h
	}()

	sig := envelope.SignalLog{
		EpochTimestampMs: epochMs,
		SessionHash:      e.state.SessionHash(),
		Status:           3,
		VersionHash:      envelope.FixedVersionHash,
	}
	sig.TimestampMsSinceStart = epochMs - e.state.StartTimeMs()

	sensorOffset := signaldist.TriangularInt(93, 4900, 3000)
	locationOffset := signaldist.TriangularInt(320, 3000, 1000)

	loc := envelope.LocationUpdate{
		Timestamp: sig.TimestampMsSinceStart - int64(locationOffset),
		Name:      "fused",
		Provider:  "fused",
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	}
	if pos.Altitude != nil {
		loc.Altitude = *pos.Altitude
	} else {
		loc.Altitude = signaldist.UniformFloat(150, 250)
	}

	if rand.Float64() < 0.15 {
		loc.DeviceCourse = -1
		loc.DeviceSpeed = -1
	} else {
		loc.DeviceCourse = e.state.Course()
		loc.DeviceSpeed = signaldist.TriangularFloat(0.25, 9.7, 8.2)
	}
	loc.ProviderStatus = 3
	loc.LocationType = 1
	loc.VerticalAccuracy = verticalAccuracy(accuracy, accuracyIsFloat)
	loc.HorizontalAccuracy = horizontalAccuracy(accuracy, accuracyIsFloat)

	sen := envelope.SensorUpdate{
		Timestamp:      sig.TimestampMsSinceStart - int64(sensorOffset),
		AccelerationX:  signaldist.TriangularFloat(-1.7, 1.2, 0),
		AccelerationY:  signaldist.TriangularFloat(-1.4, 1.9, 0),
		AccelerationZ:  signaldist.TriangularFloat(-1.4, 0.9, 0),
		AttitudePitch:  signaldist.TriangularFloat(-1.5, 1.5, 0.4),
		AttitudeYaw:    signaldist.TriangularFloat(-3.1, 3.1, 0.198),
		AttitudeRoll:   signaldist.TriangularFloat(-2.8, 3.04, 0),
		RotationRateX:  signaldist.TriangularFloat(-4.7, 3.9, 0),
		RotationRateY:  signaldist.TriangularFloat(-4.7, 4.3, 0),
		RotationRateZ:  signaldist.TriangularFloat(-4.7, 6.5, 0),
		GravityX:       signaldist.TriangularFloat(-1, 1, 0),
		GravityY:       signaldist.TriangularFloat(-1, 1, -0.2),
		GravityZ:       signaldist.TriangularFloat(-1, 0.7, -0.7),
		Status:         3,
	}
	sen.MagneticFieldAccuracy = magneticFieldAccuracy()
	if sen.MagneticFieldAccuracy == -1 {
		sen.MagneticFieldX, sen.MagneticFieldY, sen.MagneticFieldZ = 0, 0, 0
	} else {
		mx, my, mz := e.state.MagneticRanges()
		sen.MagneticFieldX = signaldist.UniformFloat(mx.Min, mx.Max)
		sen.MagneticFieldY = signaldist.UniformFloat(my.Min, my.Max)
		sen.MagneticFieldZ = signaldist.UniformFloat(mz.Min, mz.Max)
	}

	sig.LocationUpdates = []envelope.LocationUpdate{loc}
	sig.SensorUpdates = []envelope.SensorUpdate{sen}
	sig.DeviceInfo = envelope.DeviceInfo{
		DeviceID:             e.device.Fields["device_id"],
		DeviceBrand:          e.device.Fields["device_brand"],
		DeviceModel:          e.device.Fields["device_model"],
		DeviceModelBoot:      e.device.Fields["device_model_boot"],
		HardwareManufacturer: e.device.Fields["hardware_manufacturer"],
		HardwareModel:        e.device.Fields["hardware_model"],
		FirmwareBrand:        e.device.Fields["firmware_brand"],
		FirmwareTags:         e.device.Fields["firmware_tags"],
		FirmwareType:         e.device.Fields["firmware_type"],
		FirmwareFingerprint:  e.device.Fields["firmware_fingerprint"],
	}
	sig.IosDeviceInfo = envelope.IosDeviceInfo{Bool5: true}

	if len(req.Requests) > 0 && platformEightFires(req.Requests[0].RequestType) {
		probe := envelope.PlatEightRequest{Field1: e.state.Message8()}
		req.PlatformRequests = append(req.PlatformRequests, envelope.PlatformRequest{
			Type:    envelope.PlatformTypeEcho8,
			Request: probe.Marshal(),
		})
	}

	select {
	case h := <-hashInputChan:
		sig.LocationHash1 = h.LocationAuthHash
		sig.LocationHash2 = h.LocationHash
		sig.RequestHash = h.RequestHashes
	case err := <-hashErrChan:
		return envelope.RequestEnvelope{}, envelope.SignalLog{}, err
	case <-ctx.Done():
		return envelope.RequestEnvelope{}, envelope.SignalLog{}, ctx.Err()
	}

	plainSig := sig.Marshal()
	encrypted, err := e.cryptor.Encrypt(plainSig, sig.TimestampMsSinceStart, e.encryptVersion)
	if err != nil {
		return envelope.RequestEnvelope{}, envelope.SignalLog{}, err
	}
	sigReq := envelope.SendEncryptedSignatureRequest{EncryptedSignature: encrypted}
	req.PlatformRequests = append(req.PlatformRequests, envelope.PlatformRequest{
		Type:    envelope.PlatformTypeSendEncryptedSignature,
		Request: sigReq.Marshal(),
	})

	req.MsSinceLastLocationfix = sig.TimestampMsSinceStart - loc.Timestamp

	return req, sig, nil
}

func providerName(a interface{ Provider() auth.Provider }) string {
	if a.Provider() == auth.ProviderGoogle {
		return "google"
	}
	return "ptc"
}
