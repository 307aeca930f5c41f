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

// DeviceInfo is populated verbatim from the caller-supplied device profile.
type DeviceInfo struct {
	DeviceID             string
	DeviceBrand          string
	DeviceModel          string
	DeviceModelBoot      string
	HardwareManufacturer string
	HardwareModel        string
	FirmwareBrand        string
	FirmwareTags         string
	FirmwareType         string
	FirmwareFingerprint  string
}

func (d DeviceInfo) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, d.DeviceID)
	b = appendString(b, 2, d.DeviceBrand)
	b = appendString(b, 3, d.DeviceModel)
	b = appendString(b, 4, d.DeviceModelBoot)
	b = appendString(b, 5, d.HardwareManufacturer)
	b = appendString(b, 6, d.HardwareModel)
	b = appendString(b, 7, d.FirmwareBrand)
	b = appendString(b, 8, d.FirmwareTags)
	b = appendString(b, 9, d.FirmwareType)
	b = appendString(b, 10, d.FirmwareFingerprint)
	return b
}

func UnmarshalDeviceInfo(raw []byte) (DeviceInfo, error) {
	var d DeviceInfo
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			d.DeviceID = f.asString()
		case 2:
			d.DeviceBrand = f.asString()
		case 3:
			d.DeviceModel = f.asString()
		case 4:
			d.DeviceModelBoot = f.asString()
		case 5:
			d.HardwareManufacturer = f.asString()
		case 6:
			d.HardwareModel = f.asString()
		case 7:
			d.FirmwareBrand = f.asString()
		case 8:
			d.FirmwareTags = f.asString()
		case 9:
			d.FirmwareType = f.asString()
		case 10:
			d.FirmwareFingerprint = f.asString()
		}
		return nil
	})
	return d, err
}

// IosDeviceInfo carries the iOS-only sibling fields; Bool5 is forced true by
// the engine on every call regardless of caller input.
type IosDeviceInfo struct {
	Bool1 bool
	Bool5 bool
}

func (d IosDeviceInfo) Marshal() []byte {
	var b []byte
	b = appendBool(b, 1, d.Bool1)
	b = appendBool(b, 5, d.Bool5)
	return b
}

func UnmarshalIosDeviceInfo(raw []byte) (IosDeviceInfo, error) {
	var d IosDeviceInfo
	err := walkFields(raw, func(f field) error {
		switch f.num {
		case 1:
			d.Bool1 = f.asBool()
		case 5:
			d.Bool5 = f.asBool()
		}
		return nil
	})
	return d, err
}
