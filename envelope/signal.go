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

package envelope

// FixedVersionHash is the protocol-version signature constant the signal log
// stamps on every request.
const FixedVersionHash int64 = 0x4AE22D4661C83701

// LocationUpdate is the signal log's single fused-location plausibility entry.
type LocationUpdate struct {
	Timestamp         int64
	Name              string
	Latitude          float64
	Longitude         float64
	Altitude          float64
	HorizontalAccuracy float64
	VerticalAccuracy   float64
	Provider           string
	ProviderStatus      int32
	LocationType        int32
	DeviceCourse        float64
	DeviceSpeed         float64
}

func (l LocationUpdate) Marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, l.Timestamp)
	b = appendString(b, 2, l.Name)
	b = appendDouble(b, 3, l.Latitude)
	b = appendDouble(b, 4, l.Longitude)
	b = appendDouble(b, 5, l.Altitude)
	b = appendDouble(b, 6, l.HorizontalAccuracy)
	b = appendDouble(b, 7, l.VerticalAccuracy)
	b = appendString(b, 8, l.Provider)
	b = appendInt32(b, 9, l.ProviderStatus)
	b = appendInt32(b, 10, l.LocationType)
	b = appendDouble(b, 11, l.DeviceCourse)
	b = appendDouble(b, 12, l.DeviceSpeed)
	return b
}

func UnmarshalLocationUpdate(raw []byte) (LocationUpdate, error) {
	var l LocationUpdate
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			l.Timestamp = f.asInt64()
		case 2:
			l.Name = f.asString()
		case 3:
			l.Latitude = f.asDouble()
		case 4:
			l.Longitude = f.asDouble()
		case 5:
			l.Altitude = f.asDouble()
		case 6:
			l.HorizontalAccuracy = f.asDouble()
		case 7:
			l.VerticalAccuracy = f.asDouble()
		case 8:
			l.Provider = f.asString()
		case 9:
			l.ProviderStatus = f.asInt32()
		case 10:
			l.LocationType = f.asInt32()
		case 11:
			l.DeviceCourse = f.asDouble()
		case 12:
			l.DeviceSpeed = f.asDouble()
		}
		return nil
	})
	return l, err
}

// SensorUpdate is the signal log's single accelerometer/gyroscope/magnetometer
// plausibility entry.
type SensorUpdate struct {
	Timestamp             int64
	AccelerationX          float64
	AccelerationY          float64
	AccelerationZ          float64
	AttitudePitch          float64
	AttitudeYaw            float64
	AttitudeRoll           float64
	RotationRateX          float64
	RotationRateY          float64
	RotationRateZ          float64
	GravityX               float64
	GravityY               float64
	GravityZ               float64
	Status                 int32
	MagneticFieldX         float64
	MagneticFieldY         float64
	MagneticFieldZ         float64
	MagneticFieldAccuracy  int32
}

func (s SensorUpdate) Marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, s.Timestamp)
	b = appendDouble(b, 2, s.AccelerationX)
	b = appendDouble(b, 3, s.AccelerationY)
	b = appendDouble(b, 4, s.AccelerationZ)
	b = appendDouble(b, 5, s.AttitudePitch)
	b = appendDouble(b, 6, s.AttitudeYaw)
	b = appendDouble(b, 7, s.AttitudeRoll)
	b = appendDouble(b, 8, s.RotationRateX)
	b = appendDouble(b, 9, s.RotationRateY)
	b = appendDouble(b, 10, s.RotationRateZ)
	b = appendDouble(b, 11, s.GravityX)
	b = appendDouble(b, 12, s.GravityY)
	b = appendDouble(b, 13, s.GravityZ)
	b = appendInt32(b, 14, s.Status)
	b = appendDouble(b, 15, s.MagneticFieldX)
	b = appendDouble(b, 16, s.MagneticFieldY)
	b = appendDouble(b, 17, s.MagneticFieldZ)
	b = appendInt32(b, 18, s.MagneticFieldAccuracy)
	return b
}

func UnmarshalSensorUpdate(raw []byte) (SensorUpdate, error) {
	var s SensorUpdate
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			s.Timestamp = f.asInt64()
		case 2:
			s.AccelerationX = f.asDouble()
		case 3:
			s.AccelerationY = f.asDouble()
		case 4:
			s.AccelerationZ = f.asDouble()
		case 5:
			s.AttitudePitch = f.asDouble()
		case 6:
			s.AttitudeYaw = f.asDouble()
		case 7:
			s.AttitudeRoll = f.asDouble()
		case 8:
			s.RotationRateX = f.asDouble()
		case 9:
			s.RotationRateY = f.asDouble()
		case 10:
			s.RotationRateZ = f.asDouble()
		case 11:
			s.GravityX = f.asDouble()
		case 12:
			s.GravityY = f.asDouble()
		case 13:
			s.GravityZ = f.asDouble()
		case 14:
			s.Status = f.asInt32()
		case 15:
			s.MagneticFieldX = f.asDouble()
		case 16:
			s.MagneticFieldY = f.asDouble()
		case 17:
			s.MagneticFieldZ = f.asDouble()
		case 18:
			s.MagneticFieldAccuracy = f.asInt32()
		}
		return nil
	})
	return s, err
}

// SignalLog is the sensor/location plausibility record ("signal"), serialized,
// encrypted, and attached to the envelope as a type-6 platform request.
type SignalLog struct {
	TimestampMsSinceStart int64
	EpochTimestampMs      int64
	LocationUpdates       []LocationUpdate
	SensorUpdates         []SensorUpdate
	DeviceInfo            DeviceInfo
	IosDeviceInfo         IosDeviceInfo
	LocationHash1         int32
	LocationHash2         int32
	RequestHash           []int64
	SessionHash           []byte
	Status                int32
	VersionHash           int64
}

func (s SignalLog) Marshal() []byte {
	var b []byte
	b = appendInt64(b, 1, s.TimestampMsSinceStart)
	b = appendInt64(b, 2, s.EpochTimestampMs)
	for _, l := range s.LocationUpdates {
		b = appendMessage(b, 3, l.Marshal())
	}
	for _, su := range s.SensorUpdates {
		b = appendMessage(b, 4, su.Marshal())
	}
	b = appendMessage(b, 5, s.DeviceInfo.Marshal())
	b = appendMessage(b, 6, s.IosDeviceInfo.Marshal())
	b = appendInt32(b, 7, s.LocationHash1)
	b = appendInt32(b, 8, s.LocationHash2)
	for _, h := range s.RequestHash {
		b = appendInt64(b, 9, h)
	}
	b = appendBytes(b, 10, s.SessionHash)
	b = appendInt32(b, 11, s.Status)
	b = appendInt64(b, 12, s.VersionHash)
	return b
}

func UnmarshalSignalLog(raw []byte) (SignalLog, error) {
	var s SignalLog
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			s.TimestampMsSinceStart = f.asInt64()
		case 2:
			s.EpochTimestampMs = f.asInt64()
		case 3:
			l, err := UnmarshalLocationUpdate(f.buf)
			if err != nil {
				return err
			}
			s.LocationUpdates = append(s.LocationUpdates, l)
		case 4:
			su, err := UnmarshalSensorUpdate(f.buf)
			if err != nil {
				return err
			}
			s.SensorUpdates = append(s.SensorUpdates, su)
		case 5:
			d, err := UnmarshalDeviceInfo(f.buf)
			if err != nil {
				return err
			}
			s.DeviceInfo = d
		case 6:
			d, err := UnmarshalIosDeviceInfo(f.buf)
			if err != nil {
				return err
			}
			s.IosDeviceInfo = d
		case 7:
			s.LocationHash1 = f.asInt32()
		case 8:
			s.LocationHash2 = f.asInt32()
		case 9:
			s.RequestHash = append(s.RequestHash, f.asInt64())
		case 10:
			s.SessionHash = append([]byte(nil), f.buf...)
		case 11:
			s.Status = f.asInt32()
		case 12:
			s.VersionHash = f.asInt64()
		}
		return nil
	})
	return s, err
}
