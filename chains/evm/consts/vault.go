// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package consts

const VaultABI = `[
	{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"isHub","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"deployedAt","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"totalAssets","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"assets","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"deposit","outputs":[{"internalType":"uint256","name":"tokenIn","type":"uint256"},{"internalType":"uint256","name":"shares","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"shares","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"mint","outputs":[{"internalType":"uint256","name":"tokenIn","type":"uint256"},{"internalType":"uint256","name":"assets","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"assets","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"address","name":"owner","type":"address"},{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"withdraw","outputs":[{"internalType":"uint256","name":"sharesIn","type":"uint256"},{"internalType":"uint256","name":"assetsOut","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"shares","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"address","name":"owner","type":"address"},{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"redeem","outputs":[{"internalType":"uint256","name":"sharesIn","type":"uint256"},{"internalType":"uint256","name":"assetsOut","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"address[]","name":"tokens","type":"address[]"},{"internalType":"uint256[]","name":"amounts","type":"uint256[]"},{"internalType":"uint256","name":"nativeAmount","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"depositMultiAssets","outputs":[{"internalType":"uint256","name":"tokenIn","type":"uint256"},{"internalType":"uint256","name":"shares","type":"uint256"}],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"fee","type":"uint256"}],"name":"setFee","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"totalAssets","type":"uint256"}],"name":"accrueFees","outputs":[{"internalType":"uint256","name":"tokenIn","type":"uint256"},{"internalType":"uint256","name":"accrued","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

const TransportABI = `[
	{"inputs":[{"internalType":"uint32[]","name":"eids","type":"uint32[]"},{"internalType":"address[]","name":"receivers","type":"address[]"},{"internalType":"bytes","name":"payload","type":"bytes"},{"internalType":"uint256","name":"gasLimit","type":"uint256"}],"name":"quoteFee","outputs":[{"internalType":"uint256","name":"fee","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint32","name":"eid","type":"uint32"},{"internalType":"address","name":"receiver","type":"address"},{"internalType":"bytes","name":"payload","type":"bytes"},{"internalType":"uint256","name":"gasLimit","type":"uint256"},{"internalType":"address","name":"refundAddress","type":"address"}],"name":"send","outputs":[{"internalType":"bytes32","name":"guid","type":"bytes32"}],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"uint32[]","name":"eids","type":"uint32[]"},{"internalType":"address[]","name":"receivers","type":"address[]"},{"internalType":"bytes","name":"payload","type":"bytes"},{"internalType":"uint256","name":"gasLimit","type":"uint256"},{"internalType":"address","name":"refundAddress","type":"address"}],"name":"initiateRead","outputs":[{"internalType":"bytes32","name":"guid","type":"bytes32"}],"stateMutability":"payable","type":"function"}
]`

const OracleABI = `[
	{"inputs":[{"internalType":"address","name":"hub","type":"address"},{"internalType":"uint256","name":"usdValue","type":"uint256"}],"name":"underlyingFromUSD","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"hub","type":"address"},{"internalType":"uint32","name":"eid","type":"uint32"}],"name":"spokeValueUSD","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`
