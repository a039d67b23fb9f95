// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenarios holds end-to-end fixtures exercising the whole
// pipeline — primal construction, dual subdivision, operator assembly —
// against worked examples whose operator matrices are known in closed
// form.
package scenarios
