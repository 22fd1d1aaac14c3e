package mysql

const insertCafeSQL = `
INSERT INTO cafes
  (name, map_url, img_url, location, seats, has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updatePriceSQL = `
UPDATE cafes SET coffee_price = ? WHERE id = ?
`

const deleteCafeSQL = `
DELETE FROM cafes WHERE id = ?
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const selectCols = `
  id, name, map_url, img_url, location, seats,
  has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price`

const listAllSQL = `SELECT` + selectCols + `
FROM cafes`

// BINARY forces case-sensitive lexical order regardless of the column collation.
const listByNameSQL = `SELECT` + selectCols + `
FROM cafes
ORDER BY BINARY name ASC`

const getByIDSQL = `SELECT` + selectCols + `
FROM cafes
WHERE id = ?`

// BINARY comparison keeps the location filter exact-match, case-sensitive.
const findByLocationSQL = `SELECT` + selectCols + `
FROM cafes
WHERE BINARY location = ?`
