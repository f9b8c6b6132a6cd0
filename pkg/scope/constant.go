package scope

import "time"

// TokenExpirationDuration is the lifetime of tokens minted by CreateToken.
const TokenExpirationDuration = time.Hour * 24 * 7
