/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package deck

// EnergyRow compares furnace preheating schemes. Consumption is indexed to
// the traditional scheme (100); Cost is in ¥ per tonne-equivalent units.
type EnergyRow struct {
	Name        string
	Consumption float64
	Cost        float64
}

// ROIRow is one month of the payback curve, in units of ¥10,000.
type ROIRow struct {
	Month      string
	Investment float64
	Return     float64
}

// Share is one slice of a share-of-total dataset, in percent.
type Share struct {
	Name  string
	Value float64
}

var EnergyData = []EnergyRow{
	{Name: "Single preheat", Consumption: 100, Cost: 4.1},
	{Name: "HTAC dual preheat", Consumption: 77, Cost: 3.1},
}

var ROIData = []ROIRow{
	{Month: "M0", Investment: -2200, Return: 0},
	{Month: "M3", Investment: -1800, Return: 500},
	{Month: "M6", Investment: -1200, Return: 1100},
	{Month: "M9", Investment: -600, Return: 1800},
	{Month: "M12", Investment: -50, Return: 2400},
	{Month: "M14", Investment: 600, Return: 3100},
}

var SupplyChainData = []Share{
	{Name: "Suzhou local hardware", Value: 95},
	{Name: "Other", Value: 5},
}
