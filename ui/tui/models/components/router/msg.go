// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import "github.com/cyberguardian/cyberguardian/internal/navigator"

// Router -> Model

type InitMsg struct {
	RouterControll Controll
}

// ScreenChangedMsg is emitted after the router swapped the active screen.
type ScreenChangedMsg struct {
	From, To navigator.Screen
}

// Controll -> Router

type FireMsg struct {
	rid     int
	Trigger navigator.Trigger
}
type NavigateMsg struct {
	rid    int
	Screen navigator.Screen
}
type BackMsg struct {
	rid int
}

func (m InitMsg) routerID() int     { return m.RouterControll.rid }
func (m FireMsg) routerID() int     { return m.rid }
func (m NavigateMsg) routerID() int { return m.rid }
func (m BackMsg) routerID() int     { return m.rid }

type RouterMsg interface {
	routerID() int
}
