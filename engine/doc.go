/*
 * doc.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package engine drives the external programs used by goDock: AutoDock Vina
//for docking and Open Babel for format conversion and molecular descriptors.
//Each program has a handle with sensible defaults that builds the command
//line, and every invocation returns a Result with what happened, so the
//callers don't need to guess success from the files left behind.
//
//In order to use this package you need the vina and obabel binaries in
//your PATH (or set their location with SetCommand).
//Please cite AutoDock Vina and Open Babel if you use them through goDock.
package engine
