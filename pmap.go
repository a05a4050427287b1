/*
 * pmap.go, part of gocage.
 *
 * Copyright 2019 The gocage authors
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

package cage

import "sync"

//parallelMap evaluates f over every index in [0,n) on up to workers
//goroutines and returns the results in index order. f must be safe for
//concurrent calls. The first error encountered is returned after all
//workers drain; results are then invalid.
func parallelMap[T any](n, workers int, f func(i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			r, err := f(i)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}
	jobs := make(chan int)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var failed error
			for i := range jobs {
				if failed != nil {
					continue //keep draining so the feeder never blocks
				}
				r, err := f(i)
				if err != nil {
					failed = err
					continue
				}
				results[i] = r
			}
			errs <- failed
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
