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

package requests

// Request-type tags that have a registered descriptor; the full enum is much
// larger. Of these, the engine gives GET_PLAYER, GET_MAP_OBJECTS and
// ENCOUNTER a platform-8 probe probability.
const (
	TypeGetPlayer     int32 = 2
	TypeFortSearch    int32 = 101
	TypeEncounter     int32 = 102
	TypePlayerUpdate  int32 = 17
	TypeGetMapObjects int32 = 106
)

func init() {
	Register(TypeGetPlayer, Descriptor{
		Name: "GET_PLAYER",
		Request: MessageSpec{
			"player_locale": {Number: 1, Kind: KindMessage, Nested: MessageSpec{
				"country":  {Number: 1, Kind: KindString},
				"language": {Number: 2, Kind: KindString},
				"timezone": {Number: 3, Kind: KindString},
			}},
		},
		Response: MessageSpec{
			"success":     {Number: 1, Kind: KindInt},
			"player_data": {Number: 2, Kind: KindBytes},
			"banned":      {Number: 3, Kind: KindInt},
		},
	})

	Register(TypeGetMapObjects, Descriptor{
		Name: "GET_MAP_OBJECTS",
		Request: MessageSpec{
			"cell_id":            {Number: 1, Kind: KindInt, Repeated: true},
			"since_timestamp_ms": {Number: 2, Kind: KindInt, Repeated: true},
			"latitude":           {Number: 3, Kind: KindFloat},
			"longitude":          {Number: 4, Kind: KindFloat},
		},
		Response: MessageSpec{
			"status":    {Number: 1, Kind: KindInt},
			"map_cells": {Number: 2, Kind: KindBytes, Repeated: true},
		},
	})

	Register(TypeEncounter, Descriptor{
		Name: "ENCOUNTER",
		Request: MessageSpec{
			"encounter_id":      {Number: 1, Kind: KindInt},
			"spawn_point_id":    {Number: 2, Kind: KindString},
			"player_latitude":   {Number: 3, Kind: KindFloat},
			"player_longitude":  {Number: 4, Kind: KindFloat},
		},
		Response: MessageSpec{
			"status":              {Number: 1, Kind: KindInt},
			"wild_pokemon":        {Number: 2, Kind: KindBytes},
			"capture_probability": {Number: 3, Kind: KindBytes},
		},
	})

	Register(TypeFortSearch, Descriptor{
		Name: "FORT_SEARCH",
		Request: MessageSpec{
			"fort_id":          {Number: 1, Kind: KindString},
			"fort_latitude":    {Number: 2, Kind: KindFloat},
			"fort_longitude":   {Number: 3, Kind: KindFloat},
			"player_latitude":  {Number: 4, Kind: KindFloat},
			"player_longitude": {Number: 5, Kind: KindFloat},
		},
		Response: MessageSpec{
			"result":             {Number: 1, Kind: KindInt},
			"items":              {Number: 2, Kind: KindBytes, Repeated: true},
			"experience_awarded": {Number: 3, Kind: KindInt},
		},
	})

	Register(TypePlayerUpdate, Descriptor{
		Name: "PLAYER_UPDATE",
		Request: MessageSpec{
			"latitude":  {Number: 1, Kind: KindFloat},
			"longitude": {Number: 2, Kind: KindFloat},
		},
		Response: MessageSpec{
			"status": {Number: 1, Kind: KindInt},
		},
	})
}
