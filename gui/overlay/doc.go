// This file is part of Gigascreen No-Flick.
//
// Gigascreen No-Flick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gigascreen No-Flick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gigascreen No-Flick.  If not, see <https://www.gnu.org/licenses/>.

// Package overlay draws a notification bar over the top of the rendered
// output. The bar slides down from the top edge, shows the current settings
// of the engine for a few seconds and then slides back up.
//
// Empty pixels of the bar are not opaque. Dark pixels underneath the bar are
// brightened and bright pixels are darkened so that the bar is visible over
// any picture but the picture remains visible through the bar.
//
// There is also a startup banner. The banner shows two lines of text, the
// second line scrolling into view after the first line has been shown.
// Notifications are ignored while the banner is being shown.
package overlay
